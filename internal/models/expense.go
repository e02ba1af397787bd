package models

type ExpenseCategory string

const (
	CategoryAluguel    ExpenseCategory = "aluguel"
	CategoryContas     ExpenseCategory = "contas"
	CategoryProdutos   ExpenseCategory = "produtos"
	CategoryManutencao ExpenseCategory = "manutencao"
	CategoryMarketing  ExpenseCategory = "marketing"
	CategoryOutros     ExpenseCategory = "outros"
)

type Expense struct {
	ID          string          `json:"id" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Amount      float64         `json:"amount" validate:"gte=0"`
	Category    ExpenseCategory `json:"category" validate:"oneof=aluguel contas produtos manutencao marketing outros"`
	Date        string          `json:"date"`
}

func (e *Expense) Normalize() {
	e.Category = ExpenseCategory(normalizeEnum(string(e.Category)))
}
