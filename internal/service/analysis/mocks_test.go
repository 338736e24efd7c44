package analysis

import (
	"sync"

	"github.com/heartmarshall/kincaid/pkg/readability"
)

//go:generate moq -out mocks_test.go -pkg analysis . analyzer recorder

var _ analyzer = &analyzerMock{}

type analyzerMock struct {
	AnalyzeFunc         func(text string) readability.Report
	SyllablesInWordFunc func(word string) int
	ExplainFunc         func(word string) readability.Breakdown

	calls struct {
		Analyze []struct {
			Text string
		}
		SyllablesInWord []struct {
			Word string
		}
		Explain []struct {
			Word string
		}
	}
	lockAnalyze         sync.RWMutex
	lockSyllablesInWord sync.RWMutex
	lockExplain         sync.RWMutex
}

func (mock *analyzerMock) Analyze(text string) readability.Report {
	if mock.AnalyzeFunc == nil {
		panic("analyzerMock.AnalyzeFunc: method is nil but analyzer.Analyze was just called")
	}
	callInfo := struct {
		Text string
	}{Text: text}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(text)
}

func (mock *analyzerMock) AnalyzeCalls() []struct {
	Text string
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}

func (mock *analyzerMock) SyllablesInWord(word string) int {
	if mock.SyllablesInWordFunc == nil {
		panic("analyzerMock.SyllablesInWordFunc: method is nil but analyzer.SyllablesInWord was just called")
	}
	callInfo := struct {
		Word string
	}{Word: word}
	mock.lockSyllablesInWord.Lock()
	mock.calls.SyllablesInWord = append(mock.calls.SyllablesInWord, callInfo)
	mock.lockSyllablesInWord.Unlock()
	return mock.SyllablesInWordFunc(word)
}

func (mock *analyzerMock) SyllablesInWordCalls() []struct {
	Word string
} {
	mock.lockSyllablesInWord.RLock()
	calls := mock.calls.SyllablesInWord
	mock.lockSyllablesInWord.RUnlock()
	return calls
}

func (mock *analyzerMock) Explain(word string) readability.Breakdown {
	if mock.ExplainFunc == nil {
		panic("analyzerMock.ExplainFunc: method is nil but analyzer.Explain was just called")
	}
	callInfo := struct {
		Word string
	}{Word: word}
	mock.lockExplain.Lock()
	mock.calls.Explain = append(mock.calls.Explain, callInfo)
	mock.lockExplain.Unlock()
	return mock.ExplainFunc(word)
}

func (mock *analyzerMock) ExplainCalls() []struct {
	Word string
} {
	mock.lockExplain.RLock()
	calls := mock.calls.Explain
	mock.lockExplain.RUnlock()
	return calls
}

var _ recorder = &recorderMock{}

type recorderMock struct {
	RecordAnalysisFunc        func(words int)
	RecordSyllableLookupsFunc func(n int)

	calls struct {
		RecordAnalysis []struct {
			Words int
		}
		RecordSyllableLookups []struct {
			N int
		}
	}
	lockRecordAnalysis        sync.RWMutex
	lockRecordSyllableLookups sync.RWMutex
}

func (mock *recorderMock) RecordAnalysis(words int) {
	callInfo := struct {
		Words int
	}{Words: words}
	mock.lockRecordAnalysis.Lock()
	mock.calls.RecordAnalysis = append(mock.calls.RecordAnalysis, callInfo)
	mock.lockRecordAnalysis.Unlock()
	if mock.RecordAnalysisFunc != nil {
		mock.RecordAnalysisFunc(words)
	}
}

func (mock *recorderMock) RecordAnalysisCalls() []struct {
	Words int
} {
	mock.lockRecordAnalysis.RLock()
	calls := mock.calls.RecordAnalysis
	mock.lockRecordAnalysis.RUnlock()
	return calls
}

func (mock *recorderMock) RecordSyllableLookups(n int) {
	callInfo := struct {
		N int
	}{N: n}
	mock.lockRecordSyllableLookups.Lock()
	mock.calls.RecordSyllableLookups = append(mock.calls.RecordSyllableLookups, callInfo)
	mock.lockRecordSyllableLookups.Unlock()
	if mock.RecordSyllableLookupsFunc != nil {
		mock.RecordSyllableLookupsFunc(n)
	}
}

func (mock *recorderMock) RecordSyllableLookupsCalls() []struct {
	N int
} {
	mock.lockRecordSyllableLookups.RLock()
	calls := mock.calls.RecordSyllableLookups
	mock.lockRecordSyllableLookups.RUnlock()
	return calls
}
