package usecase

// Export internals for testing
var (
	BuildChatPrompt       = buildChatPrompt
	PatchContactReply     = patchContactReply
	AdminNotificationBody = adminNotificationBody
)

const NoContextPlaceholder = noContextPlaceholder
