package store

import (
	"time"

	"gorm.io/gorm/clause"

	"github.com/arbazessaqkhan/jktfeed/models"
)

// PageCount is a path with its view count
type PageCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

// DailyCount is one day of page views
type DailyCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// VisitorStats is the admin analytics summary
type VisitorStats struct {
	TotalVisitors  int64        `json:"total_visitors"`
	TotalPageViews int64        `json:"total_page_views"`
	TopPages       []PageCount  `json:"top_pages"`
	Daily          []DailyCount `json:"daily"`
}

// RecordPageView upserts the visitor row (bumping last_seen) and appends a
// page view
func (s *Store) RecordPageView(visitorToken, path string, referrer, userAgent *string) error {
	now := time.Now()
	visitor := models.Visitor{
		VisitorToken: visitorToken,
		UserAgent:    userAgent,
		FirstSeen:    now,
		LastSeen:     now,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visitor_token"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"last_seen": now}),
	}).Create(&visitor).Error
	if err != nil {
		return err
	}

	// The upsert path does not fill the ID; read it back
	if visitor.VisitorID == 0 {
		var row models.Visitor
		if err := s.db.First(&row, "visitor_token = ?", visitorToken).Error; err != nil {
			return err
		}
		visitor.VisitorID = row.VisitorID
	}

	view := models.PageView{
		VisitorID: visitor.VisitorID,
		Path:      path,
		Referrer:  referrer,
	}
	return s.db.Create(&view).Error
}

// GetVisitorStats aggregates totals, top pages and a daily series over the
// trailing window
func (s *Store) GetVisitorStats(days int) (*VisitorStats, error) {
	if days < 1 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	stats := &VisitorStats{}

	if err := s.db.Model(&models.Visitor{}).Count(&stats.TotalVisitors).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.PageView{}).Count(&stats.TotalPageViews).Error; err != nil {
		return nil, err
	}

	err := s.db.Model(&models.PageView{}).
		Select("path, COUNT(*) as count").
		Where("created_at >= ?", since).
		Group("path").
		Order("count DESC").
		Limit(10).
		Scan(&stats.TopPages).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.PageView{}).
		Select("DATE(created_at) as day, COUNT(*) as count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&stats.Daily).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
