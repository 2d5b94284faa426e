// Package ofx turns OFX/QFX bank exports into entries that can be registered.
package ofx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/Veraticus/gofinances/internal/model"
	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
)

// ErrZeroAmount marks statement lines that move no money.
var ErrZeroAmount = errors.New("zero amount")

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Entry is one statement line. Amount is always positive; the sign of the
// bank amount is carried by Type.
type Entry struct {
	Date    time.Time
	FitID   string
	Account string
	Name    string
	Amount  string
	Type    model.TransactionType
}

// ImportID identifies the entry across repeated imports of the same statement.
func (e Entry) ImportID() string {
	return "ofx:" + e.Account + ":" + e.FitID
}

// Transaction builds the record to store for e under category.
func (e Entry) Transaction(category string) model.Transaction {
	return model.Transaction{
		ID:       e.ImportID(),
		Name:     e.Name,
		Amount:   e.Amount,
		Type:     e.Type,
		Category: category,
		Date:     e.Date.UTC(),
	}
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// SEVERITY must be INFO, WARN or ERROR
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML exports sometimes drop the closing bracket of bare tags
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

func (p *Parser) parse(reader io.Reader) (*ofxgo.Response, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}
	return resp, nil
}

// ParseFile parses an OFX/QFX file and returns its statement lines in file order.
// Lines with a zero amount are skipped.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]Entry, error) {
	resp, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	var bankStmts, ccStmts, skipped int

	collect := func(list *ofxgo.TransactionList, account string) error {
		if list == nil {
			return nil
		}
		for _, ofxTx := range list.Transactions {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := p.convertTransaction(ofxTx, account)
			if err != nil {
				skipped++
				slog.Debug("Skipping statement line", "fitid", ofxTx.FiTID, "error", err)
				continue
			}
			entries = append(entries, entry)
		}
		return nil
	}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if err := collect(stmt.BankTranList, string(stmt.BankAcctFrom.AcctID)); err != nil {
				return nil, err
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if err := collect(stmt.BankTranList, string(stmt.CCAcctFrom.AcctID)); err != nil {
				return nil, err
			}
		}
	}

	slog.Info("Parsed OFX file",
		"entries", len(entries),
		"skipped", skipped,
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return entries, nil
}

// convertTransaction maps an OFX line to an Entry. OFX uses negative amounts for debits.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction, account string) (Entry, error) {
	amount, err := decimal.NewFromString(ofxTx.TrnAmt.FloatString(2))
	if err != nil {
		return Entry{}, fmt.Errorf("invalid amount: %w", err)
	}
	if amount.IsZero() {
		return Entry{}, ErrZeroAmount
	}

	txType := model.TypePositive
	if amount.IsNegative() {
		txType = model.TypeNegative
	}

	return Entry{
		Date:    ofxTx.DtPosted.Time,
		FitID:   string(ofxTx.FiTID),
		Account: account,
		Name:    p.extractName(ofxTx),
		Amount:  amount.Abs().StringFixed(2),
		Type:    txType,
	}, nil
}

// extractName tries to get a clean description from OFX data.
func (p *Parser) extractName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := string(tx.Name)

	// MEMO often has the merchant when NAME is generic
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}

	name = strings.TrimSpace(name)

	prefixes := []string{
		"POS PURCHASE ",
		"DEBIT CARD PURCHASE ",
		"COMPRA CARTAO ",
		"COMPRA CARTÃO ",
		"COMPRA DEBITO ",
		"PIX ENVIADO ",
		"PIX RECEBIDO ",
		"PAGTO ",
		"TED ",
	}

	upper := strings.ToUpper(name)
	for _, prefix := range prefixes {
		if strings.HasPrefix(upper, prefix) {
			name = strings.TrimSpace(name[len(prefix):])
			break
		}
	}

	// leading "DD/MM " dates
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

// isGenericDescription checks if a transaction name is too generic.
func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"PAYMENT",
		"PIX",
		"COMPRA",
		"PAGAMENTO",
	}

	upperName := strings.ToUpper(strings.TrimSpace(name))
	for _, g := range generic {
		if upperName == g {
			return true
		}
	}
	return false
}

// GetAccounts extracts unique account IDs from the OFX file.
func (p *Parser) GetAccounts(_ context.Context, reader io.Reader) ([]string, error) {
	resp, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var accounts []string
	add := func(id ofxgo.String) {
		if id != "" && !seen[string(id)] {
			seen[string(id)] = true
			accounts = append(accounts, string(id))
		}
	}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			add(stmt.BankAcctFrom.AcctID)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			add(stmt.CCAcctFrom.AcctID)
		}
	}

	return accounts, nil
}
