package repository

import (
	"github.com/jmoiron/sqlx"
)

// DashboardStats 后台首页概览数据
type DashboardStats struct {
	TotalDeals       int64 `db:"total_deals" json:"totalDeals"`
	ActiveDeals      int64 `db:"active_deals" json:"activeDeals"`
	TotalCoupons     int64 `db:"total_coupons" json:"totalCoupons"`
	TotalFreebies    int64 `db:"total_freebies" json:"totalFreebies"`
	TotalStores      int64 `db:"total_stores" json:"totalStores"`
	PublishedBlogs   int64 `db:"published_blogs" json:"publishedBlogs"`
	TotalSubscribers int64 `db:"total_subscribers" json:"totalSubscribers"`
}

// TopDeal 浏览量最高的优惠
type TopDeal struct {
	DealID string `db:"deal_id" json:"dealId"`
	Title  string `db:"title" json:"title"`
	Views  int64  `db:"views" json:"views"`
	Clicks int64  `db:"clicks" json:"clicks"`
}

// DashboardRepository 仪表盘只读聚合查询，绕过 GORM 直接用 sqlx
type DashboardRepository interface {
	GetStats() (*DashboardStats, error)
	GetTopDeals(limit int) ([]TopDeal, error)
}

type dashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

const statsQuery = `
SELECT
	(SELECT COUNT(*) FROM deals WHERE deleted_at IS NULL)                                             AS total_deals,
	(SELECT COUNT(*) FROM deals WHERE deleted_at IS NULL
		AND is_active AND start_date <= NOW() AND end_date > NOW())                                   AS active_deals,
	(SELECT COUNT(*) FROM coupons WHERE deleted_at IS NULL)                                           AS total_coupons,
	(SELECT COUNT(*) FROM freebies WHERE deleted_at IS NULL)                                          AS total_freebies,
	(SELECT COUNT(*) FROM stores WHERE deleted_at IS NULL)                                            AS total_stores,
	(SELECT COUNT(*) FROM blogs WHERE deleted_at IS NULL AND is_published)                            AS published_blogs,
	(SELECT COUNT(*) FROM newsletter_subscribers WHERE deleted_at IS NULL AND is_active)              AS total_subscribers
`

func (r *dashboardRepository) GetStats() (*DashboardStats, error) {
	var stats DashboardStats
	if err := r.db.Get(&stats, statsQuery); err != nil {
		return nil, err
	}
	return &stats, nil
}

const topDealsQuery = `
SELECT a.deal_id, d.title, a.views, a.clicks
FROM deal_analytics a
JOIN deals d ON d.id = a.deal_id AND d.deleted_at IS NULL
ORDER BY a.views DESC
LIMIT $1
`

func (r *dashboardRepository) GetTopDeals(limit int) ([]TopDeal, error) {
	deals := []TopDeal{}
	if err := r.db.Select(&deals, topDealsQuery, limit); err != nil {
		return nil, err
	}
	return deals, nil
}
