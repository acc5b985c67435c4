package services

import (
	"fmt"
	"net/url"
	"strings"

	"cantina_backend/internal/models"
	"cantina_backend/pkg/money"
)

// SummaryService renders the shareable text views of a list's orders: the
// plain-text summary used for clipboard copy and the WhatsApp deep links.
// Rendering is a pure function of its inputs; identical inputs produce
// byte-identical output.
type SummaryService interface {
	RenderText(list *models.List, orders []models.Order) string
	RenderOrderMessage(order *models.Order) string
	// WhatsAppOrderLink builds a wa.me deep link for one client's order.
	// Returns ErrNoContactPhone when the order has no phone on file.
	WhatsAppOrderLink(order *models.Order) (string, error)
	// WhatsAppSummaryLink builds a wa.me link carrying the whole list
	// summary without a target phone (opens an empty chat).
	WhatsAppSummaryLink(list *models.List, orders []models.Order) string
}

type summaryService struct {
	countryCode string // prefixed to sanitized phone numbers, e.g. "55"
}

// NewSummaryService creates a new instance of SummaryService.
func NewSummaryService(countryCode string) SummaryService {
	return &summaryService{countryCode: countryCode}
}

func (s *summaryService) RenderText(list *models.List, orders []models.Order) string {
	listName := "Lista"
	if list != nil && list.Name != "" {
		listName = list.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 RESUMO DE PEDIDOS - %s\n", listName)
	b.WriteString(strings.Repeat("═", 50) + "\n\n")

	totalItems := 0
	for i, order := range orders {
		fmt.Fprintf(&b, "👤 PEDIDO %d: %s\n", i+1, order.ClientName)
		if order.ClientPhone != "" {
			fmt.Fprintf(&b, "📞 %s\n", order.ClientPhone)
		}
		b.WriteString("\n📦 Produtos:\n")
		for _, item := range order.Items {
			fmt.Fprintf(&b, "  • %s x%d = %s\n", item.ProductName, item.Quantity, money.FormatBRL(item.Subtotal))
			totalItems += item.Quantity
		}
		fmt.Fprintf(&b, "\n💰 Total Individual: %s\n", money.FormatBRL(order.TotalValue))
		b.WriteString(strings.Repeat("─", 50) + "\n\n")
	}

	b.WriteString("\n" + strings.Repeat("═", 50) + "\n")
	fmt.Fprintf(&b, "💵 TOTAL GERAL: %s\n", money.FormatBRL(SumOrderTotals(orders)))
	fmt.Fprintf(&b, "👥 Total de Clientes: %d\n", len(orders))
	fmt.Fprintf(&b, "📦 Total de Itens: %d\n", totalItems)
	b.WriteString(strings.Repeat("═", 50) + "\n")

	return b.String()
}

func (s *summaryService) RenderOrderMessage(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🙏 Olá %s!\n\n", order.ClientName)
	b.WriteString("*Seu Pedido:*\n\n")

	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s\n", item.ProductName)
		fmt.Fprintf(&b, "  %dx %s = %s\n\n", item.Quantity, money.FormatBRL(item.Price), money.FormatBRL(item.Subtotal))
	}

	separator := strings.Repeat("━", 16)
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "*TOTAL: %s*\n", money.FormatBRL(order.TotalValue))
	b.WriteString(separator + "\n\n")
	b.WriteString("Favor confirmar o pagamento! 💳\n")
	b.WriteString("Obrigado! 😊")

	return b.String()
}

func (s *summaryService) WhatsAppOrderLink(order *models.Order) (string, error) {
	phone := digitsOnly(order.ClientPhone)
	if phone == "" {
		return "", ErrNoContactPhone
	}
	message := s.RenderOrderMessage(order)
	return "https://wa.me/" + s.countryCode + phone + "?text=" + url.QueryEscape(message), nil
}

func (s *summaryService) WhatsAppSummaryLink(list *models.List, orders []models.Order) string {
	summary := s.RenderText(list, orders)
	return "https://wa.me/?text=" + url.QueryEscape(summary)
}

// digitsOnly strips everything but 0-9 from a phone number.
func digitsOnly(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
