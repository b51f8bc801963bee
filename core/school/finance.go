package school

// NewPayment is a payment made against a fee.
type NewPayment struct {
	FeeID  string  `json:"feeId" validate:"required"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Method string  `json:"method" validate:"required"`
}

// RecordPayment credits the fee's student and settles the fee when the amount covers it.
// The balance is decremented as is: overpaying makes it negative.
func (d Dataset) RecordPayment(np NewPayment) (Payment, []Replacement, error) {
	fi := indexOf(d.Fees, np.FeeID, Fee.key)
	if fi < 0 {
		return Payment{}, nil, ErrNotFound
	}
	fee := d.Fees[fi]
	si := indexOf(d.Students, fee.StudentID, Student.key)
	if si < 0 {
		return Payment{}, nil, ErrNotFound
	}

	id, seq := d.nextID(paymentSeq)
	pmt := Payment{
		ID:     id,
		Amount: np.Amount,
		Date:   today(),
		Method: np.Method,
	}
	stu := d.Students[si]
	stu.Fees = StudentFees{
		Balance:  stu.Fees.Balance - pmt.Amount,
		Payments: appended(stu.Fees.Payments, pmt),
	}
	if fee.Amount <= pmt.Amount {
		fee.Paid = true
	}

	return pmt, []Replacement{
		ReplaceStudents(replaced(d.Students, si, stu)),
		ReplaceFees(replaced(d.Fees, fi, fee)),
		seq,
	}, nil
}
