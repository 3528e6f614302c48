package events

// Event types follow the format: domain.action
const (
	EventTypeUserRegistered = "user.registered"
	EventTypeUserDeleted    = "user.deleted"
)

const AggregateTypeUser = "user"

// DirectoryChannel carries every directory change, locally and over Redis.
const DirectoryChannel = "channel:directory"

// DirectoryChannelPattern matches the channels the Redis bridge listens on.
const DirectoryChannelPattern = "channel:*"
