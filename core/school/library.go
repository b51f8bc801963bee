package school

import (
	"github.com/trezcool/elimu/core/curriculum"
)

const newBookCover = "📚"

type (
	NewLoan struct {
		BookID       string       `json:"bookId" validate:"required"`
		BorrowerID   string       `json:"borrowerId" validate:"required"`
		BorrowerType BorrowerType `json:"borrowerType" validate:"required,borrower"`
		BorrowerName string       `json:"borrowerName" validate:"required"`
		DateDue      string       `json:"dateDue" validate:"required,endate"`
	}

	NewBook struct {
		Title          string             `json:"title" validate:"required"`
		Author         string             `json:"author" validate:"required"`
		ISBN           string             `json:"isbn" validate:"required"`
		Category       string             `json:"category" validate:"required"`
		EducationLevel []curriculum.Level `json:"educationLevel" validate:"dive,edulevel"`
		Quantity       int                `json:"quantity" validate:"min=1"`
		Publisher      string             `json:"publisher"`
		YearPublished  string             `json:"yearPublished"`
		Description    string             `json:"description"`
	}
)

// IssueLoan lends one copy of a book. It fails with ErrBookUnavailable when no copy is left.
func (d Dataset) IssueLoan(nl NewLoan) (BookLoan, []Replacement, error) {
	bi := indexOf(d.Books, nl.BookID, Book.key)
	if bi < 0 || d.Books[bi].Available <= 0 {
		return BookLoan{}, nil, ErrBookUnavailable
	}
	book := d.Books[bi]
	book.Available--

	id, seq := d.nextID(string(BookLoans))
	loan := BookLoan{
		ID:           id,
		BookID:       nl.BookID,
		BorrowerID:   nl.BorrowerID,
		BorrowerType: nl.BorrowerType,
		BorrowerName: nl.BorrowerName,
		DateIssued:   today(),
		DateDue:      nl.DateDue,
		Status:       LoanIssued,
	}
	return loan, []Replacement{
		ReplaceBookLoans(appended(d.BookLoans, loan)),
		ReplaceBooks(replaced(d.Books, bi, book)),
		seq,
	}, nil
}

// ReturnLoan closes loan `id` and puts the copy back on the shelf.
// A loan can only be returned once.
func (d Dataset) ReturnLoan(id string) (BookLoan, []Replacement, error) {
	li := indexOf(d.BookLoans, id, BookLoan.key)
	if li < 0 {
		return BookLoan{}, nil, ErrNotFound
	}
	loan := d.BookLoans[li]
	if loan.Status == LoanReturned {
		return BookLoan{}, nil, ErrAlreadyReturned
	}
	loan.Status = LoanReturned
	loan.DateReturned = today()
	repls := []Replacement{ReplaceBookLoans(replaced(d.BookLoans, li, loan))}

	// a loan of a removed book is still closed
	if bi := indexOf(d.Books, loan.BookID, Book.key); bi >= 0 {
		book := d.Books[bi]
		if book.Available < book.Quantity {
			book.Available++
		}
		repls = append(repls, ReplaceBooks(replaced(d.Books, bi, book)))
	}
	return loan, repls, nil
}

// AddBook catalogs a new title with every copy available.
func (d Dataset) AddBook(nb NewBook) (Book, []Replacement) {
	levels := append([]curriculum.Level(nil), nb.EducationLevel...)
	if len(levels) == 0 {
		levels = []curriculum.Level{curriculum.UpperPrimary}
	}
	id, seq := d.nextID(string(Books))
	book := Book{
		ID:             id,
		Title:          nb.Title,
		Author:         nb.Author,
		ISBN:           nb.ISBN,
		Category:       nb.Category,
		EducationLevel: levels,
		Quantity:       nb.Quantity,
		Available:      nb.Quantity,
		Publisher:      nb.Publisher,
		YearPublished:  nb.YearPublished,
		Description:    nb.Description,
		CoverImage:     newBookCover,
	}
	return book, []Replacement{ReplaceBooks(appended(d.Books, book)), seq}
}
