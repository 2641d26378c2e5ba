package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ContentPlanItem is one planned post inside a strategy
type ContentPlanItem struct {
	Title    string `json:"title" validate:"required"`
	Caption  string `json:"caption" validate:"required"`
	ImageURL string `json:"image_url,omitempty"`
}

// StrategyContent is the plan body stored as JSONB on a strategy
type StrategyContent struct {
	Theme       string            `json:"theme"`
	Goal        string            `json:"goal"`
	ContentPlan []ContentPlanItem `json:"content_plan"`
}

// Value implements the driver.Valuer interface for StrategyContent
func (c StrategyContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface for StrategyContent
func (c *StrategyContent) Scan(value interface{}) error {
	if value == nil {
		*c = StrategyContent{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for StrategyContent")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*c = StrategyContent{}
		return nil
	}
	return json.Unmarshal(bytes, c)
}

type Strategy struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	AdminID         uuid.UUID       `db:"admin_id" json:"admin_id"`
	Type            string          `db:"type" json:"type"`
	Content         StrategyContent `db:"content" json:"content"`
	Status          string          `db:"status" json:"status"`
	ExpectedOutcome string          `db:"expected_outcome" json:"expected_outcome"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// PostMetrics is the latest metrics snapshot for a published post
type PostMetrics struct {
	Reach      int `db:"reach" json:"reach"`
	Engagement int `db:"engagement" json:"engagement"`
	Likes      int `db:"likes" json:"likes"`
	Comments   int `db:"comments" json:"comments"`
	Shares     int `db:"shares" json:"shares"`
}

type Post struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	AdminID        uuid.UUID  `db:"admin_id" json:"admin_id"`
	StrategyID     *uuid.UUID `db:"strategy_id" json:"strategy_id,omitempty"`
	Content        string     `db:"content" json:"content"`
	ImageURL       *string    `db:"image_url" json:"image_url,omitempty"`
	ScheduledTime  time.Time  `db:"scheduled_time" json:"scheduled_time"`
	Status         string     `db:"status" json:"status"`
	PostedTime     *time.Time `db:"posted_time" json:"posted_time,omitempty"`
	ExternalPostID *string    `db:"external_post_id" json:"external_post_id,omitempty"`
	ErrorMessage   *string    `db:"error_message" json:"error_message,omitempty"`
	PostMetrics
	MetricsUpdatedAt *time.Time `db:"metrics_updated_at" json:"metrics_updated_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// DuePost is a pending post joined with the type of its parent strategy, if any
type DuePost struct {
	Post
	StrategyType *string `db:"strategy_type" json:"strategy_type,omitempty"`
}

type Interaction struct {
	ID         uuid.UUID `db:"id" json:"id"`
	AdminID    uuid.UUID `db:"admin_id" json:"admin_id"`
	ExternalID string    `db:"external_id" json:"external_id"`
	Type       string    `db:"type" json:"type"`
	SenderRole string    `db:"sender_role" json:"sender_role"`
	Content    string    `db:"content" json:"content"`
	PostID     *string   `db:"post_id" json:"post_id,omitempty"`
	ParentID   *string   `db:"parent_id" json:"parent_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// PlatformSettings holds an admin's connected page. AccessToken is sealed at rest.
type PlatformSettings struct {
	AdminID           uuid.UUID `db:"admin_id" json:"admin_id"`
	PageID            string    `db:"page_id" json:"page_id"`
	PageName          *string   `db:"page_name" json:"page_name,omitempty"`
	AccessToken       string    `db:"access_token" json:"-"`
	NotificationEmail *string   `db:"notification_email" json:"notification_email,omitempty"`
	NotificationPhone *string   `db:"notification_phone" json:"notification_phone,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

type WalletTransaction struct {
	ID           uuid.UUID `db:"id" json:"id"`
	AdminID      uuid.UUID `db:"admin_id" json:"admin_id"`
	Amount       float64   `db:"amount" json:"amount"`
	Type         string    `db:"type" json:"type"`
	Description  string    `db:"description" json:"description"`
	BalanceAfter float64   `db:"balance_after" json:"balance_after"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type ActivityLog struct {
	ID        uuid.UUID `db:"id" json:"id"`
	AdminID   uuid.UUID `db:"admin_id" json:"admin_id"`
	Level     string    `db:"level" json:"level"`
	Action    string    `db:"action" json:"action"`
	Details   string    `db:"details" json:"details"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// StrategyDiagnosis is the audit record written for every corrective action
type StrategyDiagnosis struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	AdminID          uuid.UUID  `db:"admin_id" json:"admin_id"`
	StrategyID       uuid.UUID  `db:"strategy_id" json:"strategy_id"`
	AverageReach     float64    `db:"average_reach" json:"average_reach"`
	Threshold        float64    `db:"threshold" json:"threshold"`
	Diagnosis        string     `db:"diagnosis" json:"diagnosis"`
	CorrectivePostID *uuid.UUID `db:"corrective_post_id" json:"corrective_post_id,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

type PageInsight struct {
	ID         uuid.UUID `db:"id" json:"id"`
	AdminID    uuid.UUID `db:"admin_id" json:"admin_id"`
	PageID     string    `db:"page_id" json:"page_id"`
	Reach      int       `db:"reach" json:"reach"`
	Engagement int       `db:"engagement" json:"engagement"`
	CapturedAt time.Time `db:"captured_at" json:"captured_at"`
}
