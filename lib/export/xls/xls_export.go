package xlsexport

import (
	"bytes"
	applicationapimodels "job-board-backend/models/api/application"
	postingapimodels "job-board-backend/models/api/posting"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(posting postingapimodels.PostingView, list []applicationapimodels.ApplicationView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Соискатель", "Статус", "Дата отклика", "Дата закрытия", "Сопроводительное письмо"}

func (i impl) ExportApplicationList(posting postingapimodels.PostingView, list []applicationapimodels.ApplicationView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Отклики")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []applicationapimodels.ApplicationView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Соискатель"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.SeekerID); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.StatusName); err != nil {
			return row, err
		}

		// "Дата отклика"
		col++
		if !item.AppliedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.AppliedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Дата закрытия"
		col++
		if !item.ClosesAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.ClosesAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Сопроводительное письмо"
		col++
		if err := writeColumn(f, sheet, col, row, item.StatementOfPurpose); err != nil {
			return row, err
		}
	}
	return row, nil
}
