package sequence

import (
	"errors"

	"gorm.io/gorm"
)

// Counter backs manual primary-key assignment: one row per entity table,
// bumped atomically on every allocation.
type Counter struct {
	Name  string `gorm:"primaryKey;column:table_name"`
	Value int64  `gorm:"not null;default:0"`
}

func (Counter) TableName() string {
	return "counters"
}

var ErrAllocation = errors.New("id allocation failed")

// NextID returns the next id for a table. The increment is a single UPDATE
// (row-locked by the database until the enclosing transaction commits), so
// concurrent callers always observe distinct values — never a read-max-
// then-add-one pair. Call it inside the same transaction as the dependent
// insert; if allocation fails the insert must not proceed.
func NextID(tx *gorm.DB, table string) (int64, error) {
	res := tx.Model(&Counter{}).
		Where("table_name = ?", table).
		UpdateColumn("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		// First allocation for a table that was never seeded.
		c := Counter{Name: table, Value: 1}
		if err := tx.Create(&c).Error; err != nil {
			return 0, err
		}
		return 1, nil
	}

	var c Counter
	if err := tx.Where("table_name = ?", table).First(&c).Error; err != nil {
		return 0, err
	}
	if c.Value <= 0 {
		return 0, ErrAllocation
	}
	return c.Value, nil
}

// Seed makes sure a counter row exists for each table so the first real
// allocation never races on row creation.
func Seed(db *gorm.DB, tables ...string) error {
	for _, t := range tables {
		var c Counter
		err := db.Where("table_name = ?", t).First(&c).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&Counter{Name: t, Value: 0}).Error; err != nil {
			return err
		}
	}
	return nil
}
