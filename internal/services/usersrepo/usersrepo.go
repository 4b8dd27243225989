package usersrepo

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/google/uuid"
	"github.com/karimi-wahid/landmark-user-sync/internal/db/migrations"
)

const userColumns = "id, external_id, first_name, last_name, image_url, emails, created_at, updated_at"

var (
	upsertUserQuery = `INSERT INTO ` + migrations.SchemaName + `.users
	(id, external_id, first_name, last_name, image_url, emails)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (external_id) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		image_url = EXCLUDED.image_url,
		emails = EXCLUDED.emails,
		updated_at = now()
	RETURNING ` + userColumns

	deleteUserQuery = `DELETE FROM ` + migrations.SchemaName + `.users WHERE external_id = $1`

	getUserQuery = `SELECT ` + userColumns + ` FROM ` + migrations.SchemaName + `.users WHERE external_id = $1`
)

// User is the local record of an identity provider user.
type User struct {
	// ID is the local identifier written back to the identity provider.
	ID         string            `boil:"id" json:"id"`
	ExternalID string            `boil:"external_id" json:"externalId"`
	FirstName  null.String       `boil:"first_name" json:"firstName"`
	LastName   null.String       `boil:"last_name" json:"lastName"`
	ImageURL   null.String       `boil:"image_url" json:"imageUrl"`
	Emails     types.StringArray `boil:"emails" json:"emails"`
	CreatedAt  time.Time         `boil:"created_at" json:"createdAt"`
	UpdatedAt  time.Time         `boil:"updated_at" json:"updatedAt"`
}

// Repository stores users in postgres.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// UpsertUserRequest represents the data needed to create or update a user.
type UpsertUserRequest struct {
	ExternalID string
	FirstName  string
	LastName   string
	ImageURL   string
	Emails     []string
}

func (req UpsertUserRequest) Validate() error {
	if strings.TrimSpace(req.ExternalID) == "" {
		return fmt.Errorf("%w externalId is required", ValidationError)
	}
	return nil
}

// CreateOrUpdateUser inserts the user, or updates the existing row with the same external id.
// The local id of an existing row never changes.
func (r *Repository) CreateOrUpdateUser(ctx context.Context, req UpsertUserRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, richerrors.Error{
			ExternalMsg: "Invalid request: " + err.Error(),
			Err:         err,
			Code:        http.StatusBadRequest,
		}
	}

	emails := types.StringArray(req.Emails)
	if emails == nil {
		emails = types.StringArray{}
	}

	var user User
	err := queries.Raw(upsertUserQuery,
		uuid.New().String(),
		req.ExternalID,
		emptyToNull(req.FirstName),
		emptyToNull(req.LastName),
		emptyToNull(req.ImageURL),
		emails,
	).Bind(ctx, r.db, &user)
	if err != nil {
		return nil, richerrors.Error{
			ExternalMsg: "Error saving user",
			Err:         fmt.Errorf("failed to upsert user %s: %w", req.ExternalID, err),
			Code:        http.StatusInternalServerError,
		}
	}
	return &user, nil
}

// DeleteUser removes the user with the given external id. Deleting an unknown user is not an error.
func (r *Repository) DeleteUser(ctx context.Context, externalID string) error {
	if strings.TrimSpace(externalID) == "" {
		return richerrors.Error{
			ExternalMsg: "User id is required",
			Err:         ValidationError,
			Code:        http.StatusBadRequest,
		}
	}

	if _, err := queries.Raw(deleteUserQuery, externalID).ExecContext(ctx, r.db); err != nil {
		return richerrors.Error{
			ExternalMsg: "Error deleting user",
			Err:         fmt.Errorf("failed to delete user %s: %w", externalID, err),
			Code:        http.StatusInternalServerError,
		}
	}
	return nil
}

// GetUserByExternalID retrieves a user by its identity provider id.
func (r *Repository) GetUserByExternalID(ctx context.Context, externalID string) (*User, error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, richerrors.Error{
			ExternalMsg: "User id is required",
			Err:         ValidationError,
			Code:        http.StatusBadRequest,
		}
	}

	var user User
	if err := queries.Raw(getUserQuery, externalID).Bind(ctx, r.db, &user); err != nil {
		if IsNoRowsError(err) {
			return nil, richerrors.Error{
				ExternalMsg: "User not found",
				Err:         err,
				Code:        http.StatusNotFound,
			}
		}
		return nil, richerrors.Error{
			ExternalMsg: "Error getting user",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return &user, nil
}

func emptyToNull(s string) null.String {
	return null.NewString(s, s != "")
}
