package strutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUpper(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "test_upper_lower",
			source: "usd",
			want:   "USD",
		},
		{
			name:   "test_upper_mixed",
			source: "eUr",
			want:   "EUR",
		},
		{
			name:   "test_upper_unchanged",
			source: "GBP",
			want:   "GBP",
		},
		{
			name:   "test_upper_empty",
			source: "",
			want:   "",
		},
		{
			name:   "test_upper_spaces_kept",
			source: " chf ",
			want:   " CHF ",
		},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := Upper(test.source)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveExtraSpaces(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "test_not_modifying_0",
			source: "US Dollar",
			want:   "US Dollar",
		},
		{
			name:   "test_not_extra_space_inner",
			source: "US  Dollar",
			want:   "US Dollar",
		},
		{
			name:   "test_not_extra_space_inner_tab",
			source: "US \t\tDollar",
			want:   "US Dollar",
		},
		{
			name:   "test_not_extra_space_inner_outer",
			source: "   US        Dollar   ",
			want:   "US Dollar",
		},
		{
			name:   "test_not_extra_space_inner_outer_tab",
			source: "\t  Hong \tKong   Dollar\t",
			want:   "Hong Kong Dollar",
		},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := RemoveExtraSpaces(test.source)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveContentIntoBrackets(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "test_remove_into_brackets_0",
			source: "(Hello world)",
			want:   "",
		},
		{
			name:   "test_remove_into_brackets_1",
			source: "[Hello world]",
			want:   "",
		},
		{
			name:   "test_remove_into_brackets_2",
			source: "UNITED ARAB EMIRATES (THE)",
			want:   "UNITED ARAB EMIRATES ",
		},
		{
			name:   "test_remove_into_brackets_3",
			source: "Hello [Hello (world)]world!(Hello [world])",
			want:   "Hello world!",
		},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := RemoveContentIntoBrackets(test.source)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveNonAlpha(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "test_remove_non_alpha_0",
			source: " u.s.d ",
			want:   "usd",
		},
		{
			name:   "test_remove_non_alpha_1",
			source: "EUR",
			want:   "EUR",
		},
		{
			name:   "test_remove_non_alpha_2",
			source: "РубUSD840",
			want:   "USD",
		},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := RemoveNonAlpha(test.source)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestCleanName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "test_clean_name_fund",
			source: "Bolívar Soberano (FUND)  ",
			want:   "Bolívar Soberano",
		},
		{
			name:   "test_clean_name_plain",
			source: "Serbian Dinar",
			want:   "Serbian Dinar",
		},
		{
			name:   "test_clean_name_inner",
			source: "US Dollar (Next day)  Fund",
			want:   "US Dollar Fund",
		},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := CleanName(test.source)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
