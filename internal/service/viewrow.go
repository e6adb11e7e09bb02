package service

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"

	"github.com/homebudget/backend/internal/cache"
	"github.com/homebudget/backend/internal/models"
)

const (
	unknownWalletName = "Nieznany"
	noValue           = "-"
	inStatsYes        = "Tak"
	inStatsNo         = "Nie"
	defaultRowColor   = "#1b1c1d"
)

// Row is the denormalized, display-ready form of a transaction. It is
// derived on every read and never written back.
type Row struct {
	ID             uuid.UUID
	Date           string
	Amount         string
	Author         string
	AuthorID       uuid.UUID
	AuthorColor    string
	Category       string
	Subcategory    string
	Type           models.Type
	Status         models.Status
	FromWallet     string
	ToWallet       string
	Sentiment      string
	Tag            string
	Description    string
	InStats        string
	AttachmentPath string
	AttachmentType string
	RowColor       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Rows builds the view rows for the whole ledger. The cache is reloaded
// first so the joins see the latest categories and wallets. Pending
// entries sort first, then newest first.
func (s *Service) Rows() ([]Row, error) {
	if err := s.ReloadCache(); err != nil {
		return nil, err
	}

	transactions, err := s.transactions.All()
	if err != nil {
		return nil, err
	}

	aliases, err := s.session.Users()
	if err != nil {
		return nil, err
	}

	snapshot := s.cache.Load()
	rows := make([]Row, 0, len(transactions))
	for _, transaction := range transactions {
		rows = append(rows, s.row(transaction, snapshot, aliases))
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		if a.Status != b.Status {
			if a.Status == models.StatusPending {
				return -1
			}
			if b.Status == models.StatusPending {
				return 1
			}
		}
		return strings.Compare(b.Date, a.Date)
	})

	return rows, nil
}

func (s *Service) row(transaction models.Transaction, snapshot *cache.Snapshot, aliases map[uuid.UUID]string) Row {
	row := Row{
		ID:          transaction.ID,
		Date:        transaction.Date.Format("2006-01-02"),
		Amount:      transaction.Amount.StringFixed(2),
		AuthorID:    transaction.CreatedByID,
		AuthorColor: s.session.Color(transaction.CreatedByID),
		Category:    noValue,
		Subcategory: noValue,
		Type:        transaction.Type,
		Status:      transaction.Status,
		ToWallet:    noValue,
		Sentiment:   noValue,
		InStats:     inStatsYes,
		RowColor:    defaultRowColor,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}

	if category, ok := snapshot.CategoryBySubcategoryID(transaction.SubcategoryID); ok {
		row.Category = category.Group
		row.Subcategory = category.Name
		if category.ColorHex != nil && *category.ColorHex != "" {
			row.RowColor = *category.ColorHex
		} else {
			row.RowColor = CategoryColor(category.Group)
		}
	}

	if alias, ok := aliases[transaction.CreatedByID]; ok {
		row.Author = alias
	} else {
		// Not registered yet: show a masked partial id.
		id := transaction.CreatedByID.String()
		row.Author = "..." + id[len(id)-4:]
	}

	if name, ok := snapshot.WalletName(transaction.WalletID); ok {
		row.FromWallet = name
	} else {
		row.FromWallet = unknownWalletName
	}
	if transaction.ToWalletID != nil {
		if name, ok := snapshot.WalletName(*transaction.ToWalletID); ok {
			row.ToWallet = name
		}
	}

	if transaction.Sentiment != nil {
		row.Sentiment = string(*transaction.Sentiment)
	}
	if transaction.Tag != nil {
		row.Tag = *transaction.Tag
	}
	if transaction.Description != nil {
		row.Description = *transaction.Description
	}
	if transaction.ExcludedFromStats {
		row.InStats = inStatsNo
	}
	if transaction.AttachmentPath != nil {
		row.AttachmentPath = *transaction.AttachmentPath
	}
	if transaction.AttachmentType != nil {
		row.AttachmentType = *transaction.AttachmentType
	}

	return row
}

// Filter narrows the ledger view. The zero value is the default view:
// pending entries hidden, no text filter.
type Filter struct {
	IncludePending bool
	// Pattern is a case-insensitive glob matched against category,
	// subcategory, tag, description and author.
	Pattern string
}

// FilterRows applies the filter to already built view rows.
func FilterRows(rows []Row, filter Filter) []Row {
	pattern := strings.ToLower(filter.Pattern)

	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if !filter.IncludePending && row.Status == models.StatusPending {
			continue
		}
		if pattern != "" && !matchesPattern(row, pattern) {
			continue
		}
		filtered = append(filtered, row)
	}

	return filtered
}

func matchesPattern(row Row, pattern string) bool {
	for _, field := range []string{row.Category, row.Subcategory, row.Tag, row.Description, row.Author} {
		if glob.Glob(pattern, strings.ToLower(field)) {
			return true
		}
	}
	return false
}
