package requests

import "gorm.io/gorm"

// UpdateStatus moves a request from one status to another as a single
// conditional update. The WHERE clause re-checks the prior status, so two
// concurrent decisions on the same request can never both land: the loser
// matches zero rows and gets ErrInvalidTransition.
func UpdateStatus(db *gorm.DB, id int64, from, to string) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	res := db.Model(&PurchaseRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}
