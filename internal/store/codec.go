package store

import (
	"encoding/json"
	"time"

	"github.com/sandeepkv93/assignd/internal/model"
)

// taskRecord is the wire shape of a task inside the persisted blob. Times
// travel as ISO-8601 strings.
type taskRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}

func encodeTasks(tasks []model.Task) ([]byte, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			ID:          t.ID,
			Title:       t.Title,
			Subject:     t.Subject,
			Description: t.Description,
			Deadline:    t.Deadline.Format(time.RFC3339),
			Priority:    string(t.Priority),
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		})
	}
	return json.Marshal(records)
}

func decodeTasks(raw []byte) ([]model.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(records))
	for _, r := range records {
		deadline, err := time.Parse(time.RFC3339, r.Deadline)
		if err != nil {
			return nil, err
		}
		createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, model.Task{
			ID:          r.ID,
			Title:       r.Title,
			Subject:     r.Subject,
			Description: r.Description,
			Deadline:    deadline,
			Priority:    model.Priority(r.Priority),
			Completed:   r.Completed,
			CreatedAt:   createdAt,
		})
	}
	return out, nil
}
