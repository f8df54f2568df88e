package monobank

// CreatePersonal 以默认地址与超时创建 PersonalClient。
func CreatePersonal(token string, opts ...Option) (*PersonalClient, error) {
	cfg := DefaultConfig()
	cfg.Token = token
	return NewPersonal(cfg, opts...)
}

// CreateCorporate 以默认地址与超时创建 CorporateClient；privateKey 为 PEM 文本或文件路径。
func CreateCorporate(keyID, privateKey string, opts ...Option) (*CorporateClient, error) {
	cfg := DefaultConfig()
	cfg.KeyID = keyID
	cfg.PrivateKey = privateKey
	return NewCorporate(cfg, opts...)
}
