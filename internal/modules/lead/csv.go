package lead

import (
	"encoding/csv"
	"fmt"
	"io"

	"paradise/internal/domain"
)

// utf8BOM makes Excel open the file with the right encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeaders = []string{
	"ID", "Дата", "Имя", "Компания", "Телефон", "Email",
	"Тип продукта", "Количество", "Сообщение", "Статус", "Язык", "Источник",
}

func writeCSV(w io.Writer, leads []domain.Lead) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}

	for _, l := range leads {
		quantity := ""
		if l.Quantity != nil {
			quantity = fmt.Sprintf("%d", *l.Quantity)
		}
		row := []string{
			fmt.Sprintf("%d", l.ID),
			l.CreatedAt.Format("02.01.2006 15:04"),
			l.Name,
			l.Company,
			l.Phone,
			l.Email,
			l.ProductType.DisplayName(domain.LangRU),
			quantity,
			l.Message,
			l.Status.DisplayName(),
			l.Language,
			l.Source,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
