package merchant

import (
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 120

type Merchant struct {
	id     int64
	name   string
	logoID int64
}

func NewMerchant(name string, logoID int64) (*Merchant, error) {
	m := &Merchant{}
	if err := m.apply(name, logoID); err != nil {
		return nil, err
	}
	return m, nil
}

func Reconstruct(id int64, name string, logoID int64) *Merchant {
	return &Merchant{id: id, name: name, logoID: logoID}
}

// Rename replaces name and logo together; both are validated before either changes.
func (m *Merchant) Rename(name string, logoID int64) error {
	return m.apply(name, logoID)
}

func (m *Merchant) apply(name string, logoID int64) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(n) > MaxNameLength {
		return ErrNameTooLong
	}
	if logoID <= 0 {
		return ErrInvalidLogo
	}
	m.name = n
	m.logoID = logoID
	return nil
}

func (m *Merchant) ID() int64     { return m.id }
func (m *Merchant) Name() string  { return m.name }
func (m *Merchant) LogoID() int64 { return m.logoID }
