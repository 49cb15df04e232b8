package services

import (
	"context"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
)

// AdminService handles whole-store administrative operations
type AdminService struct {
	adminStore repositories.AdminStore
}

// NewAdminService creates a new AdminService
func NewAdminService(adminStore repositories.AdminStore) *AdminService {
	return &AdminService{
		adminStore: adminStore,
	}
}

// ExportData returns a snapshot of all collections
func (s *AdminService) ExportData(ctx context.Context) (*models.Snapshot, error) {
	return s.adminStore.Export(ctx)
}

// ImportData replaces collections with the submitted snapshot. The
// snapshot is trusted as-is: only an administrative caller reaches
// this path.
func (s *AdminService) ImportData(ctx context.Context, req *models.ImportRequest) error {
	snapshot := &models.Snapshot{
		Events:       req.Events,
		Contacts:     req.Contacts,
		Testimonials: req.Testimonials,
	}
	return s.adminStore.Import(ctx, snapshot)
}

// ClearData empties all collections
func (s *AdminService) ClearData(ctx context.Context) error {
	return s.adminStore.Clear(ctx)
}

// GetCounts reports the size of each collection
func (s *AdminService) GetCounts(ctx context.Context) (events, contacts, testimonials int64, err error) {
	return s.adminStore.Counts(ctx)
}
