package sequence

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFormatCode(t *testing.T) {
	t.Run(`фиксированная ширина с нулями`, func(t *testing.T) {
		require.Equal(t, "JOB-000042", FormatCode("JOB", "-", 6, 42))
		require.Equal(t, "MIS-000001", FormatCode("MIS", "-", 6, 1))
		require.Equal(t, "EMP_0007", FormatCode("EMP", "_", 4, 7))
	})

	t.Run(`значение шире суффикса не обрезается`, func(t *testing.T) {
		require.Equal(t, "REC-1234567", FormatCode("REC", "-", 6, 1234567))
	})
}

func TestValidateParams(t *testing.T) {
	t.Run(`корректные параметры`, func(t *testing.T) {
		require.Nil(t, validateParams("seq_job_description_id", "JOB", 6))
		require.Nil(t, validateParams("_seq1", "X", 1))
	})

	t.Run(`пустое имя последовательности`, func(t *testing.T) {
		err := validateParams("", "JOB", 6)
		require.True(t, errors.Is(err, ErrInvalidParam))
		err = validateParams("   ", "JOB", 6)
		require.True(t, errors.Is(err, ErrInvalidParam))
	})

	t.Run(`имя с недопустимыми символами отклоняется до обращения к БД`, func(t *testing.T) {
		for _, name := range []string{"1seq", "seq-id", "seq id", "seq;drop", "seq'x"} {
			err := validateParams(name, "JOB", 6)
			require.True(t, errors.Is(err, ErrInvalidParam), name)
		}
	})

	t.Run(`пустой префикс`, func(t *testing.T) {
		err := validateParams("seq_x", "", 6)
		require.True(t, errors.Is(err, ErrInvalidParam))
	})

	t.Run(`неположительная длина суффикса`, func(t *testing.T) {
		err := validateParams("seq_x", "JOB", 0)
		require.True(t, errors.Is(err, ErrInvalidParam))
		err = validateParams("seq_x", "JOB", -1)
		require.True(t, errors.Is(err, ErrInvalidParam))
	})
}
