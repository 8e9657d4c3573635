package repositories

import (
	"database/sql"

	intconfig "usermgmt/internal/config"
	"usermgmt/internal/domain"
	"usermgmt/internal/domain/models"
)

// UserRepository owns all access to the users table. Listing is keyset
// based: pages are addressed by the boundary user_id of the window, which
// is safe because user_id is the immutable primary key.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = "user_id, first_name, last_name, user_type, created_at, updated_at"

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.FirstName, &u.LastName, &u.UserType, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r UserRepository) GetByID(userID string) (models.User, error) {
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE user_id = ?`, userID)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to fetch user", Err: err}
	}
	return u, nil
}

func (r UserRepository) Exists(userID string) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return false, domain.InternalError{Msg: "failed to check user", Err: err}
	}
	return n > 0, nil
}

func (r UserRepository) Insert(u models.User, passwordHash string) error {
	_, err := r.db().Exec(`
        INSERT INTO users (user_id, first_name, last_name, user_type, password_hash, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, NOW(), NOW())
    `, u.UserID, u.FirstName, u.LastName, u.UserType, passwordHash)
	if err != nil {
		return domain.InternalError{Msg: "failed to insert user", Err: err}
	}
	return nil
}

// Update writes names and type; passwordHash is written only when non-empty
// (blank means keep the current password).
func (r UserRepository) Update(userID string, u models.User, passwordHash string) error {
	var (
		res sql.Result
		err error
	)
	if passwordHash != "" {
		res, err = r.db().Exec(`
            UPDATE users SET first_name = ?, last_name = ?, user_type = ?, password_hash = ?, updated_at = NOW()
            WHERE user_id = ?
        `, u.FirstName, u.LastName, u.UserType, passwordHash, userID)
	} else {
		res, err = r.db().Exec(`
            UPDATE users SET first_name = ?, last_name = ?, user_type = ?, updated_at = NOW()
            WHERE user_id = ?
        `, u.FirstName, u.LastName, u.UserType, userID)
	}
	if err != nil {
		return domain.InternalError{Msg: "failed to update user", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// MySQL reports 0 for a no-op update of an existing row too, so
		// confirm absence before declaring not found.
		ok, exErr := r.Exists(userID)
		if exErr != nil {
			return exErr
		}
		if !ok {
			return domain.NotFoundError{Resource: "user"}
		}
	}
	return nil
}

func (r UserRepository) Delete(userID string) error {
	res, err := r.db().Exec(`DELETE FROM users WHERE user_id = ?`, userID)
	if err != nil {
		return domain.InternalError{Msg: "failed to delete user", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

func (r UserRepository) PasswordHash(userID string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
        SELECT `+userColumns+`, password_hash FROM users WHERE user_id = ?
    `, userID).Scan(&u.UserID, &u.FirstName, &u.LastName, &u.UserType, &u.CreatedAt, &u.UpdatedAt, &hash)
	if err == sql.ErrNoRows {
		return models.User{}, "", domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.User{}, "", domain.InternalError{Msg: "failed to fetch user", Err: err}
	}
	return u, hash, nil
}

func (r UserRepository) count(search string) (int64, error) {
	var (
		total int64
		err   error
	)
	if search != "" {
		err = r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE user_id LIKE ?`, search+"%").Scan(&total)
	} else {
		err = r.db().QueryRow(`SELECT COUNT(*) FROM users`).Scan(&total)
	}
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to count users", Err: err}
	}
	return total, nil
}

// countBefore returns how many rows precede userID in key order. Drives
// pageNumber and hasPrevious for cursor windows.
func (r UserRepository) countBefore(userID string) (int64, error) {
	var n int64
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE user_id < ?`, userID).Scan(&n)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to count users", Err: err}
	}
	return n, nil
}

func (r UserRepository) queryUsers(query string, args ...any) ([]models.User, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list users", Err: err}
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "failed to scan user", Err: err}
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "failed to list users", Err: err}
	}
	return users, nil
}

// List serves the first-page/search listing with offset semantics. Search
// filters by user ID prefix.
func (r UserRepository) List(search string, page, size int) (models.UserPage, error) {
	if size <= 0 {
		size = models.DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	total, err := r.count(search)
	if err != nil {
		return models.UserPage{}, err
	}

	var users []models.User
	if search != "" {
		users, err = r.queryUsers(`
            SELECT `+userColumns+` FROM users WHERE user_id LIKE ? ORDER BY user_id ASC LIMIT ? OFFSET ?
        `, search+"%", size, page*size)
	} else {
		users, err = r.queryUsers(`
            SELECT `+userColumns+` FROM users ORDER BY user_id ASC LIMIT ? OFFSET ?
        `, size, page*size)
	}
	if err != nil {
		return models.UserPage{}, err
	}

	pageWin := buildPage(users, page, size, total)
	pageWin.HasPrevious = page > 0
	pageWin.HasNext = int64(page+1)*int64(size) < total
	return pageWin, nil
}

// NextPage returns the window strictly after lastUserID in key order. At
// the end of the data it returns an empty page, never an error.
func (r UserRepository) NextPage(lastUserID string, size int) (models.UserPage, error) {
	if size <= 0 {
		size = models.DefaultPageSize
	}

	users, err := r.queryUsers(`
        SELECT `+userColumns+` FROM users WHERE user_id > ? ORDER BY user_id ASC LIMIT ?
    `, lastUserID, size+1)
	if err != nil {
		return models.UserPage{}, err
	}

	hasNext := len(users) > size
	if hasNext {
		users = users[:size]
	}
	return r.finishCursorPage(users, size, hasNext)
}

// PreviousPage returns the window strictly before firstUserID, still in
// ascending display order.
func (r UserRepository) PreviousPage(firstUserID string, size int) (models.UserPage, error) {
	if size <= 0 {
		size = models.DefaultPageSize
	}

	users, err := r.queryUsers(`
        SELECT `+userColumns+` FROM users WHERE user_id < ? ORDER BY user_id DESC LIMIT ?
    `, firstUserID, size)
	if err != nil {
		return models.UserPage{}, err
	}

	// reverse into ascending order
	for i, j := 0, len(users)-1; i < j; i, j = i+1, j-1 {
		users[i], users[j] = users[j], users[i]
	}

	hasNext := len(users) > 0
	return r.finishCursorPage(users, size, hasNext)
}

func (r UserRepository) finishCursorPage(users []models.User, size int, hasNext bool) (models.UserPage, error) {
	total, err := r.count("")
	if err != nil {
		return models.UserPage{}, err
	}

	pageNumber := 0
	hasPrevious := false
	if len(users) > 0 {
		before, err := r.countBefore(users[0].UserID)
		if err != nil {
			return models.UserPage{}, err
		}
		pageNumber = int(before) / size
		hasPrevious = before > 0
	}

	pageWin := buildPage(users, pageNumber, size, total)
	pageWin.HasNext = hasNext
	pageWin.HasPrevious = hasPrevious
	return pageWin, nil
}

func buildPage(users []models.User, pageNumber, size int, total int64) models.UserPage {
	p := models.UserPage{
		Content:    users,
		PageNumber: pageNumber,
		PageSize:   size,
		TotalElems: total,
		TotalPages: int((total + int64(size) - 1) / int64(size)),
	}
	if len(users) > 0 {
		p.FirstUserID = users[0].UserID
		p.LastUserID = users[len(users)-1].UserID
	}
	return p
}
