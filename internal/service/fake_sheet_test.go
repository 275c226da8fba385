package service

import "context"

// fakeSheet 서비스 테스트용 인메모리 ValuesAPI
type fakeSheet struct {
	data    map[string][][]interface{}
	appends map[string][][]interface{}
}

func newFakeSheet() *fakeSheet {
	return &fakeSheet{
		data:    map[string][][]interface{}{},
		appends: map[string][][]interface{}{},
	}
}

func (f *fakeSheet) Get(_ context.Context, rng string) ([][]interface{}, error) {
	return f.data[rng], nil
}

func (f *fakeSheet) Update(_ context.Context, rng string, values [][]interface{}) error {
	f.data[rng] = values
	return nil
}

func (f *fakeSheet) Append(_ context.Context, rng string, values [][]interface{}) error {
	f.appends[rng] = append(f.appends[rng], values...)
	f.data[rng] = append(f.data[rng], values...)
	return nil
}

func (f *fakeSheet) Clear(_ context.Context, rng string) error {
	delete(f.data, rng)
	return nil
}
