package config

// FeatureFlags espelha os recursos que podem ser ligados por ambiente.
// Override por variável de ambiente FEATURE_<NOME>.
type FeatureFlags struct {
	NovoSistemaAgendamento bool
	IntegracaoWhatsApp     bool
	PagamentoOnline        bool
	GaleriaFotos           bool
	PrevisaoTempo          bool
}

func loadFlags() FeatureFlags {
	return FeatureFlags{
		NovoSistemaAgendamento: getEnvBool("FEATURE_NOVO_SISTEMA_AGENDAMENTO", false),
		IntegracaoWhatsApp:     getEnvBool("FEATURE_INTEGRACAO_WHATSAPP", false),
		PagamentoOnline:        getEnvBool("FEATURE_PAGAMENTO_ONLINE", false),
		GaleriaFotos:           getEnvBool("FEATURE_GALERIA_FOTOS", true),
		PrevisaoTempo:          getEnvBool("FEATURE_PREVISAO_TEMPO", true),
	}
}
