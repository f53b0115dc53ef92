package models

type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h Health) Healthy() bool { return h.Status == "healthy" }
