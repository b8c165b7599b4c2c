package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"easyfin/internal/api"
)

func displayAccounts(accounts []api.Account) {
	tableData := pterm.TableData{{"Account", "Default", "Balances"}}
	for _, acc := range accounts {
		name := acc.Name
		if !acc.Display {
			name = pterm.Gray(name)
		}
		tableData = append(tableData, []string{name, yesNo(acc.IsDefault), formatBalances(acc.Currencies)})
	}

	pterm.DefaultSection.Printf("Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
}

func displayCategories(categories []api.Category) {
	tableData := pterm.TableData{{"Category", "Type", "Flags"}}
	for _, cat := range categories {
		var flags []string
		if cat.IsPinned {
			flags = append(flags, "pinned")
		}
		if cat.IsArchive {
			flags = append(flags, "archived")
		}

		typeName := pterm.Red("expense")
		if cat.Type == api.CategoryIncome {
			typeName = pterm.Green("income")
		}

		tableData = append(tableData, []string{cat.FullName, typeName, strings.Join(flags, ", ")})
	}

	pterm.DefaultSection.Printf("Categories")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Info.Printf("Total: %d categories\n", len(categories))
}

func displayTransactions(transactions []api.Transaction) {
	tableData := pterm.TableData{{"Date", "Category", "Description", "Total"}}
	for _, tx := range transactions {
		total := fmt.Sprintf("%.2f", tx.Total)
		if tx.Total < 0 {
			total = pterm.Red(total)
		}
		tableData = append(tableData, []string{tx.Date, tx.CategoryFullName, tx.Description, total})
	}

	pterm.DefaultSection.Printf("Transactions")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
}

func displaySummary(balance *api.BalanceEnvelope, categories []api.Category, transactions []api.Transaction) {
	pterm.DefaultSection.Printf("Balance (%s)", balance.CurrencyShortName)
	tableData := pterm.TableData{{"Group", "Account", "Balances"}}
	for _, group := range balance.Groups {
		for _, acc := range group.Accounts {
			tableData = append(tableData, []string{group.Name, acc.Name, formatBalances(acc.Currencies)})
		}
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		pterm.Error.Println(err)
		return
	}

	displayTransactions(transactions)
	pterm.Info.Printf("%d categories configured\n", len(categories))
}

func formatBalances(currencies []api.AccountCurrencyInfo) string {
	var parts []string
	for _, cur := range currencies {
		if !cur.Display {
			continue
		}
		parts = append(parts, fmt.Sprintf("%.2f %s", cur.Balance, cur.ShortName))
	}
	return strings.Join(parts, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
