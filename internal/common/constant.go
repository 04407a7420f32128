package common

// ProtocolVersion is the version field sent in every request and reply.
const ProtocolVersion = 1

// MessagePrefixFormat formats an inbox entry as "[sender]: body".
const MessagePrefixFormat = "[%s]: %s"

// AccountNamesSeparator joins usernames in ListAccounts replies.
const AccountNamesSeparator = ", "

// MessagesSeparator joins messages in a snapshot delivery reply.
const MessagesSeparator = "\n"
