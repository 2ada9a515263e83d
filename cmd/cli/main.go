package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kameti-cli",
		Short: "Kameti ledger CLI tool",
		Long:  `A command line interface for the kameti ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Transaction commands
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}

	var (
		txDate        string
		txType        string
		txAmount      string
		txDescription string
		txCategory    string
		txMember      string
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Run: func(cmd *cobra.Command, args []string) {
			createTransaction(txDate, txType, txAmount, txDescription, txCategory, txMember)
		},
	}
	addCmd.Flags().StringVar(&txDate, "date", time.Now().Format("2006-01-02"), "Transaction date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&txType, "type", "INCOME", "INCOME or EXPENSE")
	addCmd.Flags().StringVar(&txAmount, "amount", "", "Amount (non-negative)")
	addCmd.Flags().StringVar(&txDescription, "description", "", "Description")
	addCmd.Flags().StringVar(&txCategory, "category", "Other", "Category")
	addCmd.Flags().StringVar(&txMember, "member", "", "Member ID (income only)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions for a period",
		Run: func(cmd *cobra.Command, args []string) {
			year, _ := cmd.Flags().GetInt("year")
			month, _ := cmd.Flags().GetString("month")
			search, _ := cmd.Flags().GetString("search")
			listTransactions(year, month, search)
		},
	}
	listCmd.Flags().Int("year", time.Now().Year(), "Year to display")
	listCmd.Flags().String("month", "all", "Month 1-12 or 'all'")
	listCmd.Flags().String("search", "", "Search term for descriptions")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a transaction (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			deleteTransaction(args[0])
		},
	}

	txCmd.AddCommand(addCmd, listCmd, deleteCmd)
	rootCmd.AddCommand(txCmd)

	// Member commands
	memberCmd := &cobra.Command{
		Use:   "member",
		Short: "Member operations",
	}

	memberAddCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a member (prompts for name and email)",
		Run: func(cmd *cobra.Command, args []string) {
			addMember()
		},
	}

	memberListCmd := &cobra.Command{
		Use:   "list",
		Short: "List members with all-time contributions",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/members")
		},
	}

	memberCmd.AddCommand(memberAddCmd, memberListCmd)
	rootCmd.AddCommand(memberCmd)

	// Read-only views
	rootCmd.AddCommand(&cobra.Command{
		Use:   "audit",
		Short: "Show the audit trail",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/audit")
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/dashboard")
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "insights",
		Short: "Show the current insights text",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/insights")
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createTransaction(date, txType, amount, description, category, memberID string) {
	if amount == "" {
		fmt.Println("--amount is required")
		os.Exit(1)
	}

	payload := map[string]any{
		"date":        date,
		"type":        strings.ToUpper(txType),
		"amount":      json.Number(amount),
		"description": description,
		"category":    category,
	}
	if memberID != "" {
		payload["member_id"] = memberID
	}

	postJSON("/api/v1/transactions", payload)
}

func listTransactions(year int, month, search string) {
	getJSON(fmt.Sprintf("/api/v1/transactions?year=%d&month=%s&q=%s", year, month, search))
}

// deleteTransaction asks for explicit confirmation before sending the
// request; answering anything but y leaves the ledger untouched.
func deleteTransaction(id string) {
	fmt.Printf("Are you sure you want to delete transaction %s? [y/N]: ", id)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		fmt.Println("Aborted.")
		return
	}

	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequest(http.MethodDelete, baseURL+"/api/v1/transactions/"+id, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("Delete failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Println("Deleted.")
}

// addMember collects name and email interactively; leaving either
// blank cancels without sending anything.
func addMember() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter member name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)

	fmt.Print("Enter member email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)

	if name == "" || email == "" {
		fmt.Println("Cancelled.")
		return
	}

	postJSON("/api/v1/members", map[string]any{"name": name, "email": email})
}

func postJSON(path string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(pretty.String())
}
