package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-flight-board/models"
)

var userColumns = []string{"id", "username", "password_hash", "created_at"}

func buildCreateUserQuery(format sq.PlaceholderFormat, user models.User) (string, []any, error) {
	return sq.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id, username, password_hash").
		PlaceholderFormat(format).
		ToSql()
}

func buildFindUserByUsernameQuery(format sq.PlaceholderFormat, username string) (string, []any, error) {
	return sq.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		Limit(1).
		PlaceholderFormat(format).
		ToSql()
}
