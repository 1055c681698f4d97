package logs

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rx-education-api/internal/util"
)

type LogService struct {
	DB *gorm.DB
}

// Log writes one action-log row. Metadata (any JSON-marshalable value) lands
// in the jsonb column; marshal failures drop the metadata, never the entry.
func (ls *LogService) Log(entry SystemLog, metadata interface{}) error {
	var meta datatypes.JSON
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}

	newLog := SystemLog{
		Level:      entry.Level,
		Service:    entry.Service,
		UserID:     entry.UserID,
		PharmacyID: entry.PharmacyID,
		Action:     entry.Action,
		Message:    entry.Message,
		GPI:        entry.GPI,
		Metadata:   meta,
		CreatedAt:  time.Now(),
	}

	return ls.DB.Create(&newLog).Error
}

func (ls *LogService) GetLogs(input LogFilterInput) ([]SystemLog, int64, int, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 || input.PageSize > 100 {
		input.PageSize = 20
	}

	base := ls.DB.Model(&SystemLog{})

	// Default window: last 30 days unless an explicit range was given.
	if input.StartDate == nil && input.EndDate == nil {
		base = base.Where("logs.created_at >= ?", time.Now().AddDate(0, 0, -30))
	}

	if input.PharmacyID != nil {
		base = base.Where("logs.pharmacy_id = ?", *input.PharmacyID)
	}
	if input.UserID != nil {
		base = base.Where("logs.user_id = ?", *input.UserID)
	}
	if input.Level != nil && strings.TrimSpace(*input.Level) != "" {
		base = base.Where("logs.level = ?", strings.TrimSpace(*input.Level))
	}
	if input.Service != nil && strings.TrimSpace(*input.Service) != "" {
		base = base.Where("logs.service = ?", strings.TrimSpace(*input.Service))
	}
	if input.Action != nil && strings.TrimSpace(*input.Action) != "" {
		base = base.Where("logs.action = ?", strings.TrimSpace(*input.Action))
	}
	if input.GPI != nil && strings.TrimSpace(*input.GPI) != "" {
		base = base.Where("COALESCE(logs.gpi,'') = ?", strings.TrimSpace(*input.GPI))
	}

	start, hasStart, endExclusive, hasEnd, err := util.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, 0, 0, err
	}
	if hasStart {
		base = base.Where("logs.created_at >= ?", start)
	}
	if hasEnd {
		base = base.Where("logs.created_at < ?", endExclusive)
	}

	if input.Search != nil && strings.TrimSpace(*input.Search) != "" {
		like := "%" + strings.TrimSpace(*input.Search) + "%"
		base = base.Where(
			`logs.level ILIKE ?
			 OR logs.service ILIKE ?
			 OR logs.action ILIKE ?
			 OR logs.message ILIKE ?
			 OR COALESCE(logs.gpi,'') ILIKE ?`,
			like, like, like, like, like,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(input.PageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	var rows []SystemLog
	if err := base.
		Session(&gorm.Session{}).
		Order("logs.created_at DESC").
		Limit(input.PageSize).
		Offset((input.Page - 1) * input.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, 0, err
	}

	return rows, total, totalPages, nil
}
