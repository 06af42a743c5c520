//go:build unit || e2e

package builder

import (
	"discover-api/internal/domain/user"
	reqdto "discover-api/internal/handler/dto/request"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID        int64
	Name      string
	ProfileID *int64
}

func NewUserBuilder() *UserBuilder {
	profileID := int64(13)
	return &UserBuilder{
		ID:        300,
		Name:      "Alex",
		ProfileID: &profileID,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithoutProfile() *UserBuilder {
	b.ProfileID = nil
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(b.Name, b.ProfileID)
}

func (b *UserBuilder) BuildInfra() sqlc.Users {
	profile := pgtype.Int8{}
	if b.ProfileID != nil {
		profile = pgtype.Int8{Int64: *b.ProfileID, Valid: true}
	}
	return sqlc.Users{ID: b.ID, Name: b.Name, ProfileID: profile}
}

func (b *UserBuilder) BuildRecordView() *queries.UserRecordView {
	return &queries.UserRecordView{ID: b.ID, Name: b.Name, ProfileID: b.ProfileID}
}

func (b *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{Name: b.Name, ProfileID: b.ProfileID}
}
