package common

// Storage keys of the persisted layout. The roster and the account
// collection live in their own tables; their keys name the sections of an
// import/export document.
const (
	UsersKey              = "users"
	LoggedInUserKey       = "loggedInUser"
	BankAccountsKey       = "bankAccounts"
	UserSettingsKeyPrefix = "userSettings_"
	SessionSigningKeyKey  = "sessionSigningKey"
)

// UserSettingsKey returns the key of the settings blob owned by username.
func UserSettingsKey(username string) string {
	return UserSettingsKeyPrefix + username
}
