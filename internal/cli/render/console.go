package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Console вывод сообщений и таблиц в терминал
type Console struct {
	out     io.Writer
	format  Formatter
	success *color.Color
	info    *color.Color
	warn    *color.Color
	fail    *color.Color
	title   *color.Color
}

// NewConsole создает консоль; noColor отключает ANSI-цвета
func NewConsole(out io.Writer, format Formatter, noColor bool) *Console {
	c := &Console{
		out:     out,
		format:  format,
		success: color.New(color.FgGreen),
		info:    color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
		title:   color.New(color.FgMagenta, color.Bold),
	}

	if noColor {
		for _, col := range []*color.Color{c.success, c.info, c.warn, c.fail, c.title} {
			col.DisableColor()
		}
	}

	return c
}

// Formatter форматтер консоли
func (c *Console) Formatter() Formatter {
	return c.format
}

func (c *Console) Success(format string, args ...interface{}) {
	c.line(c.success, "✔ ", format, args...)
}

func (c *Console) Info(format string, args ...interface{}) {
	c.line(c.info, "", format, args...)
}

func (c *Console) Warn(format string, args ...interface{}) {
	c.line(c.warn, "! ", format, args...)
}

func (c *Console) Error(format string, args ...interface{}) {
	c.line(c.fail, "✖ ", format, args...)
}

// Title заголовок меню
func (c *Console) Title(text string) {
	_, _ = c.title.Fprintf(c.out, "\n=== %s ===\n", text)
}

func (c *Console) line(col *color.Color, prefix, format string, args ...interface{}) {
	_, _ = col.Fprintln(c.out, prefix+fmt.Sprintf(format, args...))
}

func (c *Console) table(header []string, rows [][]string) {
	t := tablewriter.NewWriter(c.out)
	t.SetHeader(header)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.AppendBulk(rows)
	t.Render()
}

func (c *Console) headers(es, en []string) []string {
	if c.format.locale() == LocaleEN {
		return en
	}
	return es
}

// Appointments таблица турно
func (c *Console) Appointments(list []*domain.AppointmentView) {
	if len(list) == 0 {
		c.Info("%s", c.pick("No hay turnos para mostrar.", "No appointments to show."))
		return
	}

	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			c.format.Day(a.ScheduledAt),
			c.format.Hour(a.ScheduledAt),
			a.ClientFullName(),
			a.Services,
			c.format.Money(a.Total),
			c.format.Status(a.Status),
		})
	}

	c.table(c.headers(
		[]string{"ID", "Fecha", "Hora", "Cliente", "Servicios", "Total", "Estado"},
		[]string{"ID", "Date", "Time", "Client", "Services", "Total", "Status"},
	), rows)
}

// Services таблица каталога
func (c *Console) Services(list []*domain.Service) {
	if len(list) == 0 {
		c.Info("%s", c.pick("No hay servicios cargados.", "No services found."))
		return
	}

	rows := make([][]string, 0, len(list))
	for _, s := range list {
		description := ""
		if s.Description != nil {
			description = *s.Description
		}
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Name,
			description,
			c.format.Money(s.Price),
			strconv.Itoa(s.DurationMinutes),
			c.format.Active(s.Active),
		})
	}

	c.table(c.headers(
		[]string{"ID", "Nombre", "Descripción", "Precio", "Minutos", "Activo"},
		[]string{"ID", "Name", "Description", "Price", "Minutes", "Active"},
	), rows)
}

// Users таблица пользователей
func (c *Console) Users(list []*domain.User) {
	if len(list) == 0 {
		c.Info("%s", c.pick("No hay usuarios para mostrar.", "No users to show."))
		return
	}

	rows := make([][]string, 0, len(list))
	for _, u := range list {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Name,
			u.Surname,
			u.Email,
			c.format.Role(u.Role),
			c.format.Active(u.Active),
		})
	}

	c.table(c.headers(
		[]string{"ID", "Nombre", "Apellido", "Email", "Rol", "Activo"},
		[]string{"ID", "Name", "Surname", "Email", "Role", "Active"},
	), rows)
}

// LineItems детализация турно с итогом
func (c *Console) LineItems(items []domain.LineItem, total decimal.Decimal) {
	rows := make([][]string, 0, len(items)+1)
	for _, item := range items {
		rows = append(rows, []string{item.ServiceName, c.format.Money(item.ChargedPrice)})
	}
	rows = append(rows, []string{"TOTAL", c.format.Money(total)})

	c.table(c.headers([]string{"Servicio", "Precio"}, []string{"Service", "Price"}), rows)
}

// Summary сводка турно по статусам
func (c *Console) Summary(list []domain.StatusSummary) {
	rows := make([][]string, 0, len(list)+1)
	count := 0
	amount := decimal.Zero
	for _, s := range list {
		rows = append(rows, []string{c.format.Status(s.Status), strconv.Itoa(s.Count), c.format.Money(s.Amount)})
		count += s.Count
		amount = amount.Add(s.Amount)
	}
	rows = append(rows, []string{"TOTAL", strconv.Itoa(count), c.format.Money(amount)})

	c.table(c.headers(
		[]string{"Estado", "Cantidad", "Monto"},
		[]string{"Status", "Count", "Amount"},
	), rows)
}

func (c *Console) pick(es, en string) string {
	if c.format.locale() == LocaleEN {
		return en
	}
	return es
}
