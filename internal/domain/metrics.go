package domain

type MetricsCollector interface {
	RecordCheck(Result)
	RecordRetry(url string)
	RecordEnqueued(url string)
	RecordWorkerStart(workerID string)
	RecordWorkerStop(workerID string)
}
