package repository

import (
	"context"

	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
)

type DonorRepository interface {
	Create(ctx context.Context, data *entity.Donor) error
	GetList(ctx context.Context) ([]entity.Donor, error)
}

type donorRepository struct{}

func NewDonorRepository() *donorRepository {
	return &donorRepository{}
}

func (r *donorRepository) Create(ctx context.Context, data *entity.Donor) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *donorRepository) GetList(ctx context.Context) ([]entity.Donor, error) {
	var result []entity.Donor
	if err := xcontext.DB(ctx).Order("amount DESC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
