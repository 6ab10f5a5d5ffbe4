package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gamestore/src/core/domain"
	"gamestore/src/core/ports"
)

var _ ports.CouponRepository = (*GormCoupons)(nil)

// couponRow maps the coupons table.
type couponRow struct {
	ID             int64           `gorm:"column:id;primaryKey"`
	Code           string          `gorm:"column:code;type:varchar(50);not null"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:numeric(10,2);not null"`
	MinAmount      int             `gorm:"column:min_amount;not null"`
}

func (couponRow) TableName() string {
	return "coupons"
}

func (r couponRow) toDomain() domain.Coupon {
	return domain.Coupon{
		ID:             r.ID,
		Code:           r.Code,
		DiscountAmount: r.DiscountAmount,
		MinAmount:      r.MinAmount,
	}
}

// GormCoupons implements CouponRepository with gorm.
type GormCoupons struct {
	db  *gorm.DB
	log *slog.Logger
}

// NewGormCoupons constructs a coupon repository on an open gorm session.
func NewGormCoupons(db *gorm.DB, log *slog.Logger) *GormCoupons {
	return &GormCoupons{db: db, log: log}
}

func (r *GormCoupons) Health(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func translateCouponErr(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NewNotFoundError("coupon")
	case errors.Is(err, gorm.ErrDuplicatedKey), pgErrorCode(err) == pgErrUniqueViolation:
		return domain.NewConflictError("coupon code already exists")
	}
	return err
}

func (r *GormCoupons) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	var rows []couponRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Coupon, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GormCoupons) GetCoupon(ctx context.Context, id int64) (*domain.Coupon, error) {
	var row couponRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translateCouponErr(err)
	}
	c := row.toDomain()
	return &c, nil
}

func (r *GormCoupons) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var row couponRow
	err := r.db.WithContext(ctx).
		Where("lower(code) = lower(?)", code).
		First(&row).Error
	if err != nil {
		return nil, translateCouponErr(err)
	}
	c := row.toDomain()
	return &c, nil
}

func (r *GormCoupons) CreateCoupon(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	row := couponRow{
		Code:           c.Code,
		DiscountAmount: c.DiscountAmount,
		MinAmount:      c.MinAmount,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, translateCouponErr(err)
	}
	created := row.toDomain()
	return &created, nil
}

func (r *GormCoupons) UpdateCoupon(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	res := r.db.WithContext(ctx).
		Model(&couponRow{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"code":            c.Code,
			"discount_amount": c.DiscountAmount,
			"min_amount":      c.MinAmount,
		})
	if res.Error != nil {
		return nil, translateCouponErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("coupon")
	}
	return &c, nil
}

func (r *GormCoupons) DeleteCoupon(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&couponRow{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("coupon")
	}
	return nil
}
