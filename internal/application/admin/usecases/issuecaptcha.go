package usecases

import (
	"context"

	"turnero/internal/application/admin/dto"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/id"
	"turnero/internal/shared/logger"
)

const defaultCaptchaLength = 6

type IssueCaptchaUseCase struct {
	store  CaptchaStore
	length int
	logger logger.Interface
}

func NewIssueCaptchaUseCase(store CaptchaStore, length int, logger logger.Interface) *IssueCaptchaUseCase {
	if length <= 0 {
		length = defaultCaptchaLength
	}
	return &IssueCaptchaUseCase{store: store, length: length, logger: logger}
}

func (uc *IssueCaptchaUseCase) Execute(ctx context.Context) (*dto.CaptchaDTO, error) {
	challenge, err := id.GenerateFrom(id.CaptchaAlphabet, uc.length)
	if err != nil {
		uc.logger.Errorw("failed to generate captcha", "error", err)
		return nil, errors.NewInternalError("failed to generate captcha")
	}
	captchaID, err := id.GenerateWithPrefix(id.PrefixCaptcha, id.DefaultLength)
	if err != nil {
		uc.logger.Errorw("failed to generate captcha id", "error", err)
		return nil, errors.NewInternalError("failed to generate captcha")
	}

	if err := uc.store.Save(ctx, captchaID, challenge); err != nil {
		uc.logger.Errorw("failed to store captcha", "error", err)
		return nil, errors.NewInternalError("failed to generate captcha")
	}

	return &dto.CaptchaDTO{
		ID:        captchaID,
		Challenge: challenge,
		ExpiresIn: int64(uc.store.TTL().Seconds()),
	}, nil
}
