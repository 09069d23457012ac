package transfer

type ProjectInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

type ScheduleInput struct {
	ProjectID   string `json:"projectId" validate:"required"`
	Platform    string `json:"platform" validate:"required"`
	Frequency   string `json:"frequency" validate:"required,oneof=Ngày Tuần Tháng '3 ngày/lần'"`
	PostingDays string `json:"postingDays"`
	PostingTime string `json:"postingTime" validate:"required"`
	IsActive    *bool  `json:"isActive"`
}

type AccountInput struct {
	ProjectID   string `json:"projectId"`
	Platform    string `json:"platform" validate:"required,oneof=facebook youtube tiktok instagram"`
	ChannelID   string `json:"channelId" validate:"required"`
	ChannelName string `json:"channelName"`
	ChannelLink string `json:"channelLink" validate:"omitempty,url"`
	AccessToken string `json:"accessToken"`
	IsActive    *bool  `json:"isActive"`
}

type PromptInput struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name" validate:"required,max=200"`
	Type      string `json:"type" validate:"required"`
	Platform  string `json:"platform"`
	Content   string `json:"content" validate:"required"`
	IsActive  *bool  `json:"isActive"`
}

type AIModelInput struct {
	Name          string  `json:"name" validate:"required"`
	Provider      string  `json:"provider"`
	MediaType     string  `json:"mediaType" validate:"required,oneof=video image audio"`
	Unit          string  `json:"unit"`
	GeneratePrice float64 `json:"generatePrice" validate:"min=0"`
	EditPrice     float64 `json:"editPrice" validate:"min=0"`
	IsActive      *bool   `json:"isActive"`
}

type ModelConfigInput struct {
	ProjectID string `json:"projectId"`
	Task      string `json:"task" validate:"required"`
	ModelID   string `json:"modelId" validate:"required"`
	Params    string `json:"params" validate:"omitempty,json"`
}

type CostLogInput struct {
	ProjectID string  `json:"projectId"`
	ItemID    string  `json:"itemId"`
	ItemType  string  `json:"itemType" validate:"omitempty,oneof=content video"`
	MediaType string  `json:"mediaType" validate:"required,oneof=video image audio"`
	Operation string  `json:"operation" validate:"required,oneof=generate edit"`
	ModelID   string  `json:"modelId"`
	ModelName string  `json:"modelName"`
	Quantity  float64 `json:"quantity" validate:"gt=0"`
}
