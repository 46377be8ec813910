package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finman/internal/errors"
	"finman/internal/models"
)

// billService manages bills and reminder state.
type billService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB) BillServicer {
	return &billService{db: db, now: utcNow}
}

// SetReminder stores a pending bill and returns it with the user's upcoming bills.
func (s *billService) SetReminder(userID string, input BillInput) (*models.Bill, []models.Bill, error) {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	if title == "" || category == "" || input.Amount <= 0 || input.DueDate.IsZero() {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please provide title, amount, due_date and category")
	}

	bill := &models.Bill{
		UserID:    userID,
		Title:     title,
		Amount:    input.Amount,
		DueDate:   input.DueDate,
		Category:  category,
		Recurring: input.Recurring,
		Status:    models.BillStatusPending,
	}
	if err := s.db.Create(bill).Error; err != nil {
		return nil, nil, apperrors.FromDB(err, nil)
	}

	upcoming, err := s.upcoming(userID)
	if err != nil {
		return nil, nil, err
	}
	return bill, upcoming, nil
}

// GetUpcoming summarizes every bill due from now on, soonest first. Paid
// bills with a future due date are included.
func (s *billService) GetUpcoming(userID string) (*UpcomingBills, error) {
	bills, err := s.upcoming(userID)
	if err != nil {
		return nil, err
	}

	result := &UpcomingBills{Count: len(bills), Bills: bills}
	for _, b := range bills {
		result.Total += b.Amount
	}
	if len(bills) > 0 {
		next := bills[0].DueDate
		result.NextDue = &next
	}
	return result, nil
}

// MarkPaid marks a bill paid. A recurring bill rolls over into a new pending
// bill due one calendar month later.
func (s *billService) MarkPaid(userID, billID string) (*BillPayment, error) {
	var payment BillPayment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		bill, err := findOwned[models.Bill](tx, userID, billID, apperrors.ErrBillNotFound)
		if err != nil {
			return err
		}

		paidAt := s.now()
		err = tx.Model(bill).Updates(map[string]any{
			"status":    models.BillStatusPaid,
			"paid_date": paidAt,
		}).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		bill.Status = models.BillStatusPaid
		bill.PaidDate = &paidAt
		payment.PaidBill = bill

		if !bill.Recurring {
			return nil
		}

		next := &models.Bill{
			UserID:    userID,
			Title:     bill.Title,
			Amount:    bill.Amount,
			DueDate:   bill.DueDate.AddDate(0, 1, 0),
			Category:  bill.Category,
			Recurring: true,
			Status:    models.BillStatusPending,
		}
		if err := tx.Create(next).Error; err != nil {
			return apperrors.FromDB(err, nil)
		}
		payment.NextBill = next
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return &payment, nil
}

func (s *billService) upcoming(userID string) ([]models.Bill, error) {
	var bills []models.Bill
	err := s.db.Scopes(ownedBy[models.Bill](userID)).
		Where("due_date >= ?", s.now()).
		Order("due_date ASC").
		Find(&bills).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	return bills, nil
}
