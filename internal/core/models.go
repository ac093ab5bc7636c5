package core

type CredentialsMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type EntryMessage struct {
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photoUrl"`
}

// UserRecord is the public identity shape. The password hash never
// leaves the repository layer.
type UserRecord struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
}

type EntryRecord struct {
	EntryID  uint   `json:"entryId"`
	UserID   uint   `json:"userId"`
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photoUrl"`
}
