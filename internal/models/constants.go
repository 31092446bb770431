package models

const (
	ThinkTag        = `(?s)<think>.*?</think>`
	DefaultLanguage = "English"
	TimestampLayout = "2006-01-02 15:04:05"

	ParamLanguage = "language"
	ParamText     = "text"
)
