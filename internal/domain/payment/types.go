package payment

type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodCard     Method = "card"
	MethodGateway  Method = "gateway"
	MethodOther    Method = "other"
)

var Methods = []Method{MethodCash, MethodTransfer, MethodCard, MethodGateway, MethodOther}

func (m Method) IsValid() bool {
	for _, v := range Methods {
		if m == v {
			return true
		}
	}
	return false
}

type DocumentType string

const (
	DocumentReceipt DocumentType = "receipt"
	DocumentInvoice DocumentType = "invoice"
	DocumentWaybill DocumentType = "waybill"
	DocumentNone    DocumentType = "none"
)

var DocumentTypes = []DocumentType{DocumentReceipt, DocumentInvoice, DocumentWaybill, DocumentNone}

func (d DocumentType) IsValid() bool {
	for _, v := range DocumentTypes {
		if d == v {
			return true
		}
	}
	return false
}
