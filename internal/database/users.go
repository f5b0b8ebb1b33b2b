package database

import "context"

// User management belongs to an external collaborator; only resolution by
// id is needed here, for foreign-reference checks at write time.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := q.pool.QueryRow(
		ctx, `SELECT id, username, created_at FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.CreatedAt)
	return u, err
}
