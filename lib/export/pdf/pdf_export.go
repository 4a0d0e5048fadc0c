package pdfexport

import (
	"bytes"
	"fmt"
	applicationapimodels "job-board-backend/models/api/application"
	postingapimodels "job-board-backend/models/api/posting"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type Provider interface {
	GeneratePostingReport(posting postingapimodels.PostingView, list []applicationapimodels.ApplicationView) (pdfFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// GeneratePostingReport формирует сводку по вакансии со списком откликов
func (i impl) GeneratePostingReport(posting postingapimodels.PostingView, list []applicationapimodels.ApplicationView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GeneratePostingReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt, fmt.Sprintf("%v — %v<br>", posting.Title, posting.Company))

	pdf.SetFont("Arial", "", 11)
	_, lineHt = pdf.GetFontSize()
	htmlStr := fmt.Sprintf("Местоположение: %v<br>", posting.Location) +
		fmt.Sprintf("Тип занятости: %v<br>", posting.JobType) +
		fmt.Sprintf("Срок подачи: %v<br>", posting.ApplyBy.Format("02.01.2006")) +
		fmt.Sprintf("Откликов: %v из %v<br>", posting.ApplicationsReceived, posting.MaxApplications) +
		fmt.Sprintf("Принято: %v из %v<br><br>", posting.AcceptedCount, posting.MaxAccepted)
	html = pdf.HTMLBasicNew()
	html.Write(lineHt, htmlStr)

	for _, item := range list {
		line := fmt.Sprintf("%v | %v | %v<br>", item.SeekerID, item.StatusName, item.AppliedAt.Format("02.01.2006"))
		html.Write(lineHt, line)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
