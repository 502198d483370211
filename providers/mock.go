package providers

import "context"

// MockProvider is an in-memory implementation of every provider contract,
// keyed by page number. Zero values yield empty results, and each concern
// can be made to fail by setting the corresponding error.
type MockProvider struct {
	CharsByPage  map[int][]Char
	WordsByPage  map[int][]Word
	TextByPage   map[int]string
	TablesByPage map[int][][][]string
	ImagesByPage map[int][]ImageRef
	OCRByPath    map[string]string

	CharsErr  error
	WordsErr  error
	TextErr   error
	TablesErr error
	ImagesErr error
	OCRErr    error

	// OCRCalls records the image paths passed to Recognize, in order.
	OCRCalls []string
}

// NewMockProvider returns an empty mock ready for per-page population.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		CharsByPage:  make(map[int][]Char),
		WordsByPage:  make(map[int][]Word),
		TextByPage:   make(map[int]string),
		TablesByPage: make(map[int][][][]string),
		ImagesByPage: make(map[int][]ImageRef),
		OCRByPath:    make(map[string]string),
	}
}

func (m *MockProvider) Chars(_ context.Context, pageNum int) ([]Char, error) {
	if m.CharsErr != nil {
		return nil, m.CharsErr
	}
	return m.CharsByPage[pageNum], nil
}

func (m *MockProvider) Words(_ context.Context, pageNum int) ([]Word, error) {
	if m.WordsErr != nil {
		return nil, m.WordsErr
	}
	return m.WordsByPage[pageNum], nil
}

func (m *MockProvider) PageText(_ context.Context, pageNum int) (string, error) {
	if m.TextErr != nil {
		return "", m.TextErr
	}
	return m.TextByPage[pageNum], nil
}

func (m *MockProvider) Tables(_ context.Context, pageNum int) ([][][]string, error) {
	if m.TablesErr != nil {
		return nil, m.TablesErr
	}
	return m.TablesByPage[pageNum], nil
}

func (m *MockProvider) Images(_ context.Context, pageNum int) ([]ImageRef, error) {
	if m.ImagesErr != nil {
		return nil, m.ImagesErr
	}
	return m.ImagesByPage[pageNum], nil
}

func (m *MockProvider) Recognize(_ context.Context, imagePath string) (string, error) {
	m.OCRCalls = append(m.OCRCalls, imagePath)
	if m.OCRErr != nil {
		return "", m.OCRErr
	}
	return m.OCRByPath[imagePath], nil
}
