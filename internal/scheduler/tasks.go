package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskCompanyRescan = "prospects.company.rescan"

type CompanyRescanPayload struct {
	Company string `json:"company"`
}

func NewCompanyRescanTask(payload CompanyRescanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCompanyRescan, data), nil
}

func ParseCompanyRescanPayload(task *asynq.Task) (CompanyRescanPayload, error) {
	var payload CompanyRescanPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return CompanyRescanPayload{}, err
	}
	return payload, nil
}
