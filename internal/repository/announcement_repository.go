package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"prime-property/internal/domain"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	List(ctx context.Context) ([]domain.Announcement, error)
}

type announcementRepository struct {
	db *sqlx.DB
}

func NewAnnouncementRepository(db *sqlx.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	query := r.db.Rebind(`INSERT INTO announcements (title, content, created_at) VALUES (?, ?, ?) RETURNING id`)
	return r.db.QueryRowxContext(ctx, query,
		announcement.Title, announcement.Content, announcement.CreatedAt,
	).Scan(&announcement.ID)
}

func (r *announcementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	announcements := []domain.Announcement{}
	query := `SELECT id, title, content, created_at FROM announcements ORDER BY created_at DESC, id DESC`
	err := r.db.SelectContext(ctx, &announcements, query)
	return announcements, err
}
