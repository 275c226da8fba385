package repository

import "context"

type updateCall struct {
	rng    string
	values [][]interface{}
}

// fakeValuesAPI 범위 문자열을 키로 쓰는 인메모리 ValuesAPI
type fakeValuesAPI struct {
	data      map[string][][]interface{}
	appends   []updateCall
	updates   []updateCall
	cleared   []string
	getErr    error
	appendErr error
	updateErr error
	clearErr  error
}

func newFakeValuesAPI() *fakeValuesAPI {
	return &fakeValuesAPI{data: map[string][][]interface{}{}}
}

func (f *fakeValuesAPI) Get(_ context.Context, rng string) ([][]interface{}, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data[rng], nil
}

func (f *fakeValuesAPI) Update(_ context.Context, rng string, values [][]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, updateCall{rng: rng, values: values})
	return nil
}

func (f *fakeValuesAPI) Append(_ context.Context, rng string, values [][]interface{}) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appends = append(f.appends, updateCall{rng: rng, values: values})
	f.data[rng] = append(f.data[rng], values...)
	return nil
}

func (f *fakeValuesAPI) Clear(_ context.Context, rng string) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared = append(f.cleared, rng)
	delete(f.data, rng)
	return nil
}
