package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminEmail = "gearhiveofficial@gmail.com"

func newAuthFixture() (*AuthService, *fakeBaaS) {
	baas := newFakeBaaS()
	baas.users[testAdminEmail] = "correct-horse"
	return NewAuthService(baas, testAdminEmail), baas
}

func TestLoginRejectsNonAdminBeforeBaaSCall(t *testing.T) {
	svc, baas := newAuthFixture()

	_, err := svc.Login(context.Background(), "attacker@x.com", "anypass")
	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.Equal(t, 0, baas.createSessionN, "白名单拒绝必须发生在任何 BaaS 调用之前")
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthFixture()

	session, err := svc.Login(context.Background(), testAdminEmail, "correct-horse")
	require.NoError(t, err)
	require.NotNil(t, session)

	user, err := svc.CurrentUser(context.Background(), session.Secret)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, testAdminEmail, user.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), testAdminEmail, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUserNoSession(t *testing.T) {
	svc, _ := newAuthFixture()

	user, err := svc.CurrentUser(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.CurrentUser(context.Background(), "stale-secret")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCurrentUserRevokesMismatchedIdentity(t *testing.T) {
	svc, baas := newAuthFixture()

	// 非管理员却持有会话 (例如白名单邮箱被改过)
	baas.sessionUser["rogue-secret"] = "someone@else.com"

	user, err := svc.CurrentUser(context.Background(), "rogue-secret")
	require.NoError(t, err)
	assert.Nil(t, user, "非管理员身份绝不能返回")
	assert.Equal(t, 1, baas.deleteSessionN, "不匹配的会话必须被立即注销")
	_, alive := baas.sessionUser["rogue-secret"]
	assert.False(t, alive)
}

func TestLogoutNeverFails(t *testing.T) {
	svc, baas := newAuthFixture()

	// 对不存在的会话注销也不报错
	svc.Logout(context.Background(), "no-such-secret")
	assert.Equal(t, 1, baas.deleteSessionN)
}
