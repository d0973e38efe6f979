package user

import "time"

// AnswerCount is the fixed number of security questions every account
// answers at registration.
const AnswerCount = 3

// User is an account. The password and the security answers are stored
// only as bcrypt hashes.
type User struct {
	ID           int
	Username     string
	PasswordHash string
	AnswerHashes [AnswerCount]string
	CreatedAt    time.Time
}
