package models

type TeleBotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

type TeleBotCommands struct {
	Commands []TeleBotCommand `json:"commands"`
}
