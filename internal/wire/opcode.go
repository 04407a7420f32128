package wire

import "strconv"

// Opcode identifies which operation a frame carries.
type Opcode int

const (
	OpCreateAccount Opcode = iota
	OpLogin
	OpSendMessage
	OpListAccounts
	OpDeleteAccount
	OpDeliverMessages
)

var opcodeNames = [...]string{
	OpCreateAccount:   "CreateAccount",
	OpLogin:           "Login",
	OpSendMessage:     "SendMessage",
	OpListAccounts:    "ListAccounts",
	OpDeleteAccount:   "DeleteAccount",
	OpDeliverMessages: "DeliverMessages",
}

// Valid reports whether o is one of the supported opcodes.
func (o Opcode) Valid() bool {
	return o >= OpCreateAccount && o <= OpDeliverMessages
}

func (o Opcode) String() string {
	if !o.Valid() {
		return "Opcode(" + strconv.Itoa(int(o)) + ")"
	}
	return opcodeNames[o]
}
