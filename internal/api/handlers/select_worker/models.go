package select_worker

// SelectWorkerRequest HTTP request model
type SelectWorkerRequest struct {
	WorkerID string `json:"workerId"`
}
