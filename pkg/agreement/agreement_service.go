package agreement

import (
	"os"
	"strings"
	"sync"

	"github.com/Nathan-Chantiny/Fridge-Inventory/domain"
)

type (
	// AgreementService gates the application behind a one-time legal
	// acknowledgement. The decision is a single line ("yes" or "no") in a
	// marker file so the question is asked once per installation.
	AgreementService interface {
		Accepted() bool
		Record(accept bool) error
	}

	agreementService struct {
		path string
		mu   sync.Mutex
	}
)

func NewAgreementService(path string) AgreementService {
	return &agreementService{path: path}
}

func (s *agreementService) Accepted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}

	content := strings.ToLower(strings.TrimSpace(string(raw)))
	return content == "yes" || content == "true"
}

func (s *agreementService) Record(accept bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content := "no"
	if accept {
		content = "yes"
	}

	if err := os.WriteFile(s.path, []byte(content), 0644); err != nil {
		return err
	}

	if !accept {
		return domain.ErrAgreementDeclined
	}
	return nil
}
