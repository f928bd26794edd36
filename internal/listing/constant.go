package listing

// Messages put in State.Err.
const (
	MsgUnexpectedFormat = "Formato de resposta inesperado"
	MsgNetwork          = "Não foi possível conectar ao servidor. Tente novamente"
	MsgServer           = "Erro no servidor (status %d)"
	MsgUnknown          = "Erro desconhecido na API"
)
