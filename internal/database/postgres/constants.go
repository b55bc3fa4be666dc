package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeForeignKeyViolation is raised when a quest references a missing user
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser        = "failed to insert user"
	ErrMsgFailedToUpdateUser        = "failed to update user"
	ErrMsgFailedToGetUser           = "failed to get user"
	ErrMsgFailedToGetUserByUsername = "failed to get user by username"
)

// Error Messages - Quest Operations
const (
	ErrMsgFailedToInsertQuests   = "failed to insert quests"
	ErrMsgFailedToGetQuest       = "failed to get quest"
	ErrMsgFailedToQueryQuests    = "failed to query quests"
	ErrMsgFailedToUpdateQuest    = "failed to update quest"
	ErrMsgFailedToGetHiddenQuest = "failed to get hidden quest"
)

const userColumns = `id, username, level, current_exp, max_exp, hp, max_hp, sp, max_sp, gold, status, created_at, updated_at`

const questColumns = `id, user_id, chain_id, title, description, difficulty, quest_type, sp_cost,
	reward_gold, reward_exp, is_completed, is_visible, step, created_at, completed_at`

// Queries
const (
	queryInsertUser = `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	queryGetUserByID          = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	queryGetUserByIDForUpdate = queryGetUserByID + ` FOR UPDATE`
	queryGetUserByUsername    = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	queryUpdateUser = `UPDATE users SET
		level = $2, current_exp = $3, max_exp = $4, hp = $5, max_hp = $6,
		sp = $7, max_sp = $8, gold = $9, status = $10, updated_at = $11
		WHERE id = $1`

	queryInsertQuest = `INSERT INTO quests (` + questColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	queryGetQuest          = `SELECT ` + questColumns + ` FROM quests WHERE id = $1 AND user_id = $2`
	queryGetQuestForUpdate = queryGetQuest + ` FOR UPDATE`

	queryListQuests = `SELECT ` + questColumns + ` FROM quests
		WHERE user_id = $1 AND ($2 OR is_visible)
		ORDER BY created_at, step`

	queryGetHiddenQuestAtStep = `SELECT ` + questColumns + ` FROM quests
		WHERE user_id = $1 AND chain_id = $2 AND step = $3
		  AND NOT is_visible AND NOT is_completed
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE`

	queryUpdateQuest = `UPDATE quests SET
		is_completed = $3, is_visible = $4, completed_at = $5
		WHERE id = $1 AND user_id = $2`
)
