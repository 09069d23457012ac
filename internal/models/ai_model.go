package models

import "time"

// AIModel is a priced entry in the model registry. Prices are USD per unit.
type AIModel struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Provider      string    `db:"provider" json:"provider"`
	MediaType     string    `db:"media_type" json:"mediaType"`
	Unit          string    `db:"unit" json:"unit"`
	GeneratePrice float64   `db:"generate_price" json:"generatePrice"`
	EditPrice     float64   `db:"edit_price" json:"editPrice"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// ModelConfig selects which model serves a task, optionally per project.
type ModelConfig struct {
	ID        string    `db:"id" json:"id"`
	ProjectID string    `db:"project_id" json:"projectId"`
	Task      string    `db:"task" json:"task"`
	ModelID   string    `db:"model_id" json:"modelId"`
	Params    string    `db:"params" json:"params"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CostLog struct {
	ID        string    `db:"id" json:"id"`
	ProjectID string    `db:"project_id" json:"projectId"`
	ItemID    string    `db:"item_id" json:"itemId"`
	ItemType  string    `db:"item_type" json:"itemType"`
	MediaType string    `db:"media_type" json:"mediaType"`
	Operation string    `db:"operation" json:"operation"`
	ModelID   string    `db:"model_id" json:"modelId"`
	ModelName string    `db:"model_name" json:"modelName"`
	Quantity  float64   `db:"quantity" json:"quantity"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// CostFilter bounds cost log queries; zero values are ignored.
type CostFilter struct {
	ProjectID string
	From      time.Time
	To        time.Time
}

const (
	MediaTypeVideo = "video"
	MediaTypeImage = "image"
	MediaTypeAudio = "audio"

	OperationGenerate = "generate"
	OperationEdit     = "edit"
)
