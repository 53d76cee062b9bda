package constants

// NSQ topics
const (
	TopicMessageLogged = "message.logged"
)
