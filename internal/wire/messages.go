package wire

type CreateAccountRequest struct {
	Version  int
	Username string
	Password string
	Fullname string
}

func (*CreateAccountRequest) Opcode() Opcode { return OpCreateAccount }
func (m *CreateAccountRequest) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("username", &m.Username),
		stringField("password", &m.Password),
		stringField("fullname", &m.Fullname),
	}
}

type CreateAccountReply struct {
	Version   int
	ErrorCode string
	AuthToken string
	Fullname  string
}

func (*CreateAccountReply) Opcode() Opcode { return OpCreateAccount }
func (m *CreateAccountReply) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("error_code", &m.ErrorCode),
		stringField("auth_token", &m.AuthToken),
		stringField("fullname", &m.Fullname),
	}
}

type LoginRequest struct {
	Version  int
	Username string
	Password string
}

func (*LoginRequest) Opcode() Opcode { return OpLogin }
func (m *LoginRequest) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("username", &m.Username),
		stringField("password", &m.Password),
	}
}

type LoginReply struct {
	Version   int
	ErrorCode string
	AuthToken string
	Fullname  string
}

func (*LoginReply) Opcode() Opcode { return OpLogin }
func (m *LoginReply) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("error_code", &m.ErrorCode),
		stringField("auth_token", &m.AuthToken),
		stringField("fullname", &m.Fullname),
	}
}

type SendMessageRequest struct {
	Version           int
	AuthToken         string
	Username          string
	RecipientUsername string
	Message           string
}

func (*SendMessageRequest) Opcode() Opcode { return OpSendMessage }
func (m *SendMessageRequest) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("auth_token", &m.AuthToken),
		stringField("username", &m.Username),
		stringField("recipient_username", &m.RecipientUsername),
		stringField("message", &m.Message),
	}
}

type SendMessageReply struct {
	Version   int
	ErrorCode string
}

func (*SendMessageReply) Opcode() Opcode { return OpSendMessage }
func (m *SendMessageReply) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("error_code", &m.ErrorCode),
	}
}

type ListAccountsRequest struct {
	Version          int
	AuthToken        string
	Username         string
	NumberOfAccounts int
	Regex            string
}

func (*ListAccountsRequest) Opcode() Opcode { return OpListAccounts }
func (m *ListAccountsRequest) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("auth_token", &m.AuthToken),
		stringField("username", &m.Username),
		intField("number_of_accounts", &m.NumberOfAccounts),
		stringField("regex", &m.Regex),
	}
}

type ListAccountsReply struct {
	Version      int
	ErrorCode    string
	AccountNames string
}

func (*ListAccountsReply) Opcode() Opcode { return OpListAccounts }
func (m *ListAccountsReply) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("error_code", &m.ErrorCode),
		stringField("account_names", &m.AccountNames),
	}
}

type DeleteAccountRequest struct {
	Version   int
	AuthToken string
	Username  string
}

func (*DeleteAccountRequest) Opcode() Opcode { return OpDeleteAccount }
func (m *DeleteAccountRequest) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("auth_token", &m.AuthToken),
		stringField("username", &m.Username),
	}
}

type DeleteAccountReply struct {
	Version   int
	ErrorCode string
}

func (*DeleteAccountReply) Opcode() Opcode { return OpDeleteAccount }
func (m *DeleteAccountReply) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("error_code", &m.ErrorCode),
	}
}

// RefreshRequest asks for delivery of the caller's pending messages.
type RefreshRequest struct {
	Version   int
	AuthToken string
	Username  string
}

func (*RefreshRequest) Opcode() Opcode { return OpDeliverMessages }
func (m *RefreshRequest) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("auth_token", &m.AuthToken),
		stringField("username", &m.Username),
	}
}

// RefreshReply carries the delivered messages, newline separated. Note the
// field order: message comes before error_code.
type RefreshReply struct {
	Version   int
	Message   string
	ErrorCode string
}

func (*RefreshReply) Opcode() Opcode { return OpDeliverMessages }
func (m *RefreshReply) fields() []field {
	return []field{
		intField("version", &m.Version),
		stringField("message", &m.Message),
		stringField("error_code", &m.ErrorCode),
	}
}

// NewRequest returns an empty request record for op, or nil if op is not
// supported.
func NewRequest(op Opcode) Message {
	switch op {
	case OpCreateAccount:
		return &CreateAccountRequest{}
	case OpLogin:
		return &LoginRequest{}
	case OpSendMessage:
		return &SendMessageRequest{}
	case OpListAccounts:
		return &ListAccountsRequest{}
	case OpDeleteAccount:
		return &DeleteAccountRequest{}
	case OpDeliverMessages:
		return &RefreshRequest{}
	}
	return nil
}

// NewReply returns an empty reply record for op, or nil if op is not
// supported.
func NewReply(op Opcode) Message {
	switch op {
	case OpCreateAccount:
		return &CreateAccountReply{}
	case OpLogin:
		return &LoginReply{}
	case OpSendMessage:
		return &SendMessageReply{}
	case OpListAccounts:
		return &ListAccountsReply{}
	case OpDeleteAccount:
		return &DeleteAccountReply{}
	case OpDeliverMessages:
		return &RefreshReply{}
	}
	return nil
}

// ErrorReply builds the reply for op that carries only code. It is used when
// a request cannot be decoded or fails before reaching the chat service.
func ErrorReply(op Opcode, version int, code string) Message {
	switch op {
	case OpCreateAccount:
		return &CreateAccountReply{Version: version, ErrorCode: code}
	case OpLogin:
		return &LoginReply{Version: version, ErrorCode: code}
	case OpSendMessage:
		return &SendMessageReply{Version: version, ErrorCode: code}
	case OpListAccounts:
		return &ListAccountsReply{Version: version, ErrorCode: code}
	case OpDeleteAccount:
		return &DeleteAccountReply{Version: version, ErrorCode: code}
	case OpDeliverMessages:
		return &RefreshReply{Version: version, ErrorCode: code}
	}
	return nil
}
