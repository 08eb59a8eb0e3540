package formater

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func singleButtonBoard(link, text string) tgbotapi.InlineKeyboardMarkup {

	board := make([][]tgbotapi.InlineKeyboardButton, 1)
	board[0] = make([]tgbotapi.InlineKeyboardButton, 1)

	board[0][0].Text = text
	board[0][0].URL = &link

	return tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: board,
	}
}

func CreateTelegramSingleButtonLink(msg tgbotapi.MessageConfig, link, text string, messageID int) tgbotapi.MessageConfig {

	msg.ReplyMarkup = singleButtonBoard(link, text)

	if messageID != 0 {
		msg.ReplyToMessageID = messageID
	}

	return msg
}

func CreateTelegramSingleButtonLinkForPhoto(msg tgbotapi.PhotoConfig, link, text string, messageID int) tgbotapi.PhotoConfig {

	msg.ReplyMarkup = singleButtonBoard(link, text)

	if messageID != 0 {
		msg.ReplyToMessageID = messageID
	}

	return msg
}
